package entities

import "time"

// EstimateStatus represents the lifecycle of an assessment estimate.
//
// Domain notes:
//   - A draft estimate is freely editable.
//   - Once finalized its lines are frozen; later changes go through an
//     additionals record instead.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "draft"
	EstimateStatusFinalized EstimateStatus = "finalized"
)

// Markups are estimate-level percentages applied on top of nett part prices
// (per part type) and nett outwork charges.
type Markups struct {
	OEMPercentage        float64 `json:"oem_percentage"`
	AlternatePercentage  float64 `json:"alternate_percentage"`
	SecondHandPercentage float64 `json:"second_hand_percentage"`
	OutworkPercentage    float64 `json:"outwork_percentage"`
}

// Estimate is the damage estimate of one assessment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (assessment_id-index): assessment_id
//
// Monetary representation:
//   - Subtotal, VATAmount and Total are the aggregates of LineItems,
//     recomputed whenever rates or lines change.
type Estimate struct {
	ID           string `json:"id"`
	AssessmentID string `json:"assessment_id"`
	ClientID     string `json:"client_id"`

	VehicleRetailValue float64 `json:"vehicle_retail_value"`

	LineItems     []LineItem `json:"line_items"`
	LabourRate    float64    `json:"labour_rate"`
	PaintRate     float64    `json:"paint_rate"`
	VATPercentage float64    `json:"vat_percentage"`
	Markups       Markups    `json:"markups"`

	Subtotal  float64 `json:"subtotal"`
	VATAmount float64 `json:"vat_amount"`
	Total     float64 `json:"total"`

	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// FindLine returns the line with the given id.
func (e Estimate) FindLine(id string) (LineItem, bool) {
	for _, l := range e.LineItems {
		if l.ID == id {
			return l, true
		}
	}
	return LineItem{}, false
}

func (e Estimate) IsFinalized() bool {
	return e.Status == EstimateStatusFinalized
}
