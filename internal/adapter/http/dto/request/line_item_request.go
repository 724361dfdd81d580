package request

import (
	"strings"

	"claims_xpto/internal/domain/entities"
)

type BettermentRequest struct {
	PartPercentage          *float64 `json:"part_percentage"`
	StripAssemblePercentage *float64 `json:"strip_assemble_percentage"`
	LabourPercentage        *float64 `json:"labour_percentage"`
	PaintPercentage         *float64 `json:"paint_percentage"`
	OutworkPercentage       *float64 `json:"outwork_percentage"`
}

// LineItemRequest is one priced line of an estimate or additionals record.
// Stored component amounts (strip_assemble, labour_cost, paint_cost) win over
// quantity x rate.
type LineItemRequest struct {
	ProcessType string `json:"process_type" binding:"required"`
	Description string `json:"description" binding:"required"`
	PartType    string `json:"part_type"`
	PartNumber  string `json:"part_number"`

	StripAssembleHours *float64 `json:"strip_assemble_hours"`
	LabourHours        *float64 `json:"labour_hours"`
	PaintPanels        *float64 `json:"paint_panels"`

	PartPriceNett     *float64 `json:"part_price_nett"`
	OutworkChargeNett *float64 `json:"outwork_charge_nett"`

	StripAssemble *float64 `json:"strip_assemble"`
	LabourCost    *float64 `json:"labour_cost"`
	PaintCost     *float64 `json:"paint_cost"`

	Betterment BettermentRequest `json:"betterment"`
}

func (r LineItemRequest) ToEntity() entities.LineItem {
	return entities.LineItem{
		ProcessType:        entities.ProcessType(strings.ToUpper(strings.TrimSpace(r.ProcessType))),
		Description:        strings.TrimSpace(r.Description),
		PartType:           entities.PartType(strings.ToUpper(strings.TrimSpace(r.PartType))),
		PartNumber:         strings.TrimSpace(r.PartNumber),
		StripAssembleHours: r.StripAssembleHours,
		LabourHours:        r.LabourHours,
		PaintPanels:        r.PaintPanels,
		PartPriceNett:      r.PartPriceNett,
		OutworkChargeNett:  r.OutworkChargeNett,
		StripAssemble:      r.StripAssemble,
		LabourCost:         r.LabourCost,
		PaintCost:          r.PaintCost,
		Betterment: entities.Betterment{
			PartPercentage:          r.Betterment.PartPercentage,
			StripAssemblePercentage: r.Betterment.StripAssemblePercentage,
			LabourPercentage:        r.Betterment.LabourPercentage,
			PaintPercentage:         r.Betterment.PaintPercentage,
			OutworkPercentage:       r.Betterment.OutworkPercentage,
		},
	}
}

func ToLineItems(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.ToEntity())
	}
	return out
}
