package response

import (
	"time"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"
)

type EstimateResponse struct {
	ID                 string             `json:"id"`
	EstimateID         string             `json:"estimate_id"`
	AssessmentID       string             `json:"assessment_id"`
	ClientID           string             `json:"client_id"`
	VehicleRetailValue float64            `json:"vehicle_retail_value"`
	Status             string             `json:"status"`
	LabourRate         float64            `json:"labour_rate"`
	PaintRate          float64            `json:"paint_rate"`
	VATPercentage      float64            `json:"vat_percentage"`
	Markups            entities.Markups   `json:"markups"`
	LineItems          []LineItemResponse `json:"line_items"`

	Totals costing.EstimateTotals `json:"totals"`
	Total  float64                `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:                 e.ID,
		EstimateID:         e.ID,
		AssessmentID:       e.AssessmentID,
		ClientID:           e.ClientID,
		VehicleRetailValue: e.VehicleRetailValue,
		Status:             string(e.Status),
		LabourRate:         e.LabourRate,
		PaintRate:          e.PaintRate,
		VATPercentage:      e.VATPercentage,
		Markups:            e.Markups,
		LineItems:          fromLineItems(e.LineItems),
		Totals:             costing.SummarizeEstimate(e),
		Total:              e.Total,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

type ThresholdResponse struct {
	EstimateID         string                 `json:"estimate_id"`
	EstimateTotal      float64                `json:"estimate_total"`
	VehicleRetailValue float64                `json:"vehicle_retail_value"`
	WriteOff           costing.WriteOffValues `json:"write_off"`
	Color              string                 `json:"color"`
	Percentage         float64                `json:"percentage"`
	Message            string                 `json:"message,omitempty"`
	ShowWarning        bool                   `json:"show_warning"`
}

func FromThreshold(v usecase.ThresholdView) ThresholdResponse {
	return ThresholdResponse{
		EstimateID:         v.EstimateID,
		EstimateTotal:      v.EstimateTotal,
		VehicleRetailValue: v.VehicleRetailValue,
		WriteOff:           v.WriteOff,
		Color:              string(v.Threshold.Color),
		Percentage:         v.Threshold.Percentage,
		Message:            v.Threshold.Message,
		ShowWarning:        v.Threshold.ShowWarning,
	}
}
