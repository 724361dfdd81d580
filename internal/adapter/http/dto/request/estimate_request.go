package request

import "claims_xpto/internal/domain/entities"

type MarkupsRequest struct {
	OEMPercentage        float64 `json:"oem_percentage"`
	AlternatePercentage  float64 `json:"alternate_percentage"`
	SecondHandPercentage float64 `json:"second_hand_percentage"`
	OutworkPercentage    float64 `json:"outwork_percentage"`
}

func (r *MarkupsRequest) ToEntity() *entities.Markups {
	if r == nil {
		return nil
	}
	return &entities.Markups{
		OEMPercentage:        r.OEMPercentage,
		AlternatePercentage:  r.AlternatePercentage,
		SecondHandPercentage: r.SecondHandPercentage,
		OutworkPercentage:    r.OutworkPercentage,
	}
}

// CreateEstimateRequest opens an estimate for an assessment. Omitted rates
// fall back to the service defaults.
type CreateEstimateRequest struct {
	AssessmentID       string            `json:"assessment_id" binding:"required"`
	ClientID           string            `json:"client_id" binding:"required"`
	VehicleRetailValue float64           `json:"vehicle_retail_value"`
	LabourRate         *float64          `json:"labour_rate"`
	PaintRate          *float64          `json:"paint_rate"`
	VATPercentage      *float64          `json:"vat_percentage"`
	Markups            *MarkupsRequest   `json:"markups"`
	LineItems          []LineItemRequest `json:"line_items" binding:"dive"`
}

// UpdateRatesRequest is a partial update; omitted fields keep their value.
type UpdateRatesRequest struct {
	LabourRate    *float64        `json:"labour_rate"`
	PaintRate     *float64        `json:"paint_rate"`
	VATPercentage *float64        `json:"vat_percentage"`
	Markups       *MarkupsRequest `json:"markups"`
}

func (r UpdateRatesRequest) IsEmpty() bool {
	return r.LabourRate == nil && r.PaintRate == nil && r.VATPercentage == nil && r.Markups == nil
}
