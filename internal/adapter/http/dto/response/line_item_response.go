package response

import "claims_xpto/internal/domain/entities"

type BettermentResponse struct {
	PartPercentage          *float64 `json:"part_percentage,omitempty"`
	StripAssemblePercentage *float64 `json:"strip_assemble_percentage,omitempty"`
	LabourPercentage        *float64 `json:"labour_percentage,omitempty"`
	PaintPercentage         *float64 `json:"paint_percentage,omitempty"`
	OutworkPercentage       *float64 `json:"outwork_percentage,omitempty"`
}

type LineItemResponse struct {
	ID          string `json:"id"`
	ProcessType string `json:"process_type"`
	Description string `json:"description"`
	PartType    string `json:"part_type,omitempty"`
	PartNumber  string `json:"part_number,omitempty"`

	StripAssembleHours *float64 `json:"strip_assemble_hours,omitempty"`
	LabourHours        *float64 `json:"labour_hours,omitempty"`
	PaintPanels        *float64 `json:"paint_panels,omitempty"`
	PartPriceNett      *float64 `json:"part_price_nett,omitempty"`
	OutworkChargeNett  *float64 `json:"outwork_charge_nett,omitempty"`
	StripAssemble      *float64 `json:"strip_assemble,omitempty"`
	LabourCost         *float64 `json:"labour_cost,omitempty"`
	PaintCost          *float64 `json:"paint_cost,omitempty"`

	Betterment BettermentResponse `json:"betterment"`
	Total      float64            `json:"total"`
}

func FromLineItem(l entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:                 l.ID,
		ProcessType:        string(l.ProcessType),
		Description:        l.Description,
		PartType:           string(l.PartType),
		PartNumber:         l.PartNumber,
		StripAssembleHours: l.StripAssembleHours,
		LabourHours:        l.LabourHours,
		PaintPanels:        l.PaintPanels,
		PartPriceNett:      l.PartPriceNett,
		OutworkChargeNett:  l.OutworkChargeNett,
		StripAssemble:      l.StripAssemble,
		LabourCost:         l.LabourCost,
		PaintCost:          l.PaintCost,
		Betterment: BettermentResponse{
			PartPercentage:          l.Betterment.PartPercentage,
			StripAssemblePercentage: l.Betterment.StripAssemblePercentage,
			LabourPercentage:        l.Betterment.LabourPercentage,
			PaintPercentage:         l.Betterment.PaintPercentage,
			OutworkPercentage:       l.Betterment.OutworkPercentage,
		},
		Total: l.Total,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, l := range items {
		out = append(out, FromLineItem(l))
	}
	return out
}
