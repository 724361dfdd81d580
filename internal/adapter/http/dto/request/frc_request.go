package request

import (
	"strings"

	"claims_xpto/internal/domain/entities"
)

type AmountsRequest struct {
	PartPrice     float64 `json:"part_price"`
	StripAssemble float64 `json:"strip_assemble"`
	LabourCost    float64 `json:"labour_cost"`
	PaintCost     float64 `json:"paint_cost"`
	OutworkCharge float64 `json:"outwork_charge"`
}

// DecisionRequest records a reviewer decision on one FRC line. adjust needs
// actual_total and reason.
type DecisionRequest struct {
	Decision    string          `json:"decision" binding:"required,oneof=pending approved adjust"`
	ActualTotal *float64        `json:"actual_total"`
	Actual      *AmountsRequest `json:"actual"`
	Reason      string          `json:"reason"`
	Actor       string          `json:"actor"`
}

func (r DecisionRequest) ResolveDecision() entities.FRCDecision {
	return entities.FRCDecision(strings.ToLower(strings.TrimSpace(r.Decision)))
}

func (r DecisionRequest) ResolveActual() *entities.FRCAmounts {
	if r.Actual == nil {
		return nil
	}
	return &entities.FRCAmounts{
		PartPrice:     r.Actual.PartPrice,
		StripAssemble: r.Actual.StripAssemble,
		LabourCost:    r.Actual.LabourCost,
		PaintCost:     r.Actual.PaintCost,
		OutworkCharge: r.Actual.OutworkCharge,
	}
}

// ResolveActor prefers the body actor and falls back to header.
func (r DecisionRequest) ResolveActor(header string) string {
	if v := strings.TrimSpace(r.Actor); v != "" {
		return v
	}
	return strings.TrimSpace(header)
}
