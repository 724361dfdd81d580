package repository

import "claims_xpto/internal/domain/entities"

// Line items are stored as nested maps inside their parent record.

type bettermentDocument struct {
	Part          *float64 `dynamodbav:"part,omitempty"`
	StripAssemble *float64 `dynamodbav:"strip_assemble,omitempty"`
	Labour        *float64 `dynamodbav:"labour,omitempty"`
	Paint         *float64 `dynamodbav:"paint,omitempty"`
	Outwork       *float64 `dynamodbav:"outwork,omitempty"`
}

type lineItemDocument struct {
	ID                 string             `dynamodbav:"id"`
	ProcessType        string             `dynamodbav:"process_type"`
	Description        string             `dynamodbav:"description"`
	PartType           string             `dynamodbav:"part_type,omitempty"`
	PartNumber         string             `dynamodbav:"part_number,omitempty"`
	StripAssembleHours *float64           `dynamodbav:"strip_assemble_hours,omitempty"`
	LabourHours        *float64           `dynamodbav:"labour_hours,omitempty"`
	PaintPanels        *float64           `dynamodbav:"paint_panels,omitempty"`
	PartPriceNett      *float64           `dynamodbav:"part_price_nett,omitempty"`
	OutworkChargeNett  *float64           `dynamodbav:"outwork_charge_nett,omitempty"`
	StripAssemble      *float64           `dynamodbav:"strip_assemble,omitempty"`
	LabourCost         *float64           `dynamodbav:"labour_cost,omitempty"`
	PaintCost          *float64           `dynamodbav:"paint_cost,omitempty"`
	Betterment         bettermentDocument `dynamodbav:"betterment"`
	Total              float64            `dynamodbav:"total"`
}

func toLineItemDocument(l entities.LineItem) lineItemDocument {
	return lineItemDocument{
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
		Betterment: bettermentDocument{
			Part:          l.Betterment.PartPercentage,
			StripAssemble: l.Betterment.StripAssemblePercentage,
			Labour:        l.Betterment.LabourPercentage,
			Paint:         l.Betterment.PaintPercentage,
			Outwork:       l.Betterment.OutworkPercentage,
		},
		Total: l.Total,
	}
}

func fromLineItemDocument(d lineItemDocument) entities.LineItem {
	return entities.LineItem{
		ID:                 d.ID,
		ProcessType:        entities.ProcessType(d.ProcessType),
		Description:        d.Description,
		PartType:           entities.PartType(d.PartType),
		PartNumber:         d.PartNumber,
		StripAssembleHours: d.StripAssembleHours,
		LabourHours:        d.LabourHours,
		PaintPanels:        d.PaintPanels,
		PartPriceNett:      d.PartPriceNett,
		OutworkChargeNett:  d.OutworkChargeNett,
		StripAssemble:      d.StripAssemble,
		LabourCost:         d.LabourCost,
		PaintCost:          d.PaintCost,
		Betterment: entities.Betterment{
			PartPercentage:          d.Betterment.Part,
			StripAssemblePercentage: d.Betterment.StripAssemble,
			LabourPercentage:        d.Betterment.Labour,
			PaintPercentage:         d.Betterment.Paint,
			OutworkPercentage:       d.Betterment.Outwork,
		},
		Total: d.Total,
	}
}

func toLineItemDocuments(items []entities.LineItem) []lineItemDocument {
	out := make([]lineItemDocument, 0, len(items))
	for _, l := range items {
		out = append(out, toLineItemDocument(l))
	}
	return out
}

func fromLineItemDocuments(docs []lineItemDocument) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromLineItemDocument(d))
	}
	return out
}
