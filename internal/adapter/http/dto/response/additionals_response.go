package response

import (
	"time"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/usecase"
)

type AdditionalLineResponse struct {
	LineItemResponse
	Action                 string `json:"action"`
	Status                 string `json:"status"`
	OriginalEstimateLineID string `json:"original_estimate_line_id,omitempty"`
	ReversesLineID         string `json:"reverses_line_id,omitempty"`
	DeclineReason          string `json:"decline_reason,omitempty"`
}

type AdditionalsResponse struct {
	ID            string                    `json:"id"`
	EstimateID    string                    `json:"estimate_id"`
	LabourRate    float64                   `json:"labour_rate"`
	PaintRate     float64                   `json:"paint_rate"`
	VATPercentage float64                   `json:"vat_percentage"`
	LineItems     []AdditionalLineResponse  `json:"line_items"`
	Totals        costing.AdditionalsTotals `json:"totals"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

func FromAdditionals(v usecase.AdditionalsView) AdditionalsResponse {
	rec := v.Record
	lines := make([]AdditionalLineResponse, 0, len(rec.LineItems))
	for _, l := range rec.LineItems {
		lines = append(lines, AdditionalLineResponse{
			LineItemResponse:       FromLineItem(l.LineItem),
			Action:                 string(l.EffectiveAction()),
			Status:                 string(l.Status),
			OriginalEstimateLineID: l.OriginalEstimateLineID,
			ReversesLineID:         l.ReversesLineID,
			DeclineReason:          l.DeclineReason,
		})
	}
	return AdditionalsResponse{
		ID:            rec.ID,
		EstimateID:    rec.EstimateID,
		LabourRate:    rec.LabourRate,
		PaintRate:     rec.PaintRate,
		VATPercentage: rec.VATPercentage,
		LineItems:     lines,
		Totals:        v.Totals,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}
