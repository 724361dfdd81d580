package response

import (
	"time"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"
)

type FRCLineResponse struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	SourceLineID string `json:"source_line_id"`
	ProcessType  string `json:"process_type"`
	Description  string `json:"description"`
	PartType     string `json:"part_type,omitempty"`
	Action       string `json:"action,omitempty"`

	QuotedLabourRate float64             `json:"quoted_labour_rate"`
	QuotedPaintRate  float64             `json:"quoted_paint_rate"`
	Quoted           entities.FRCAmounts `json:"quoted"`
	QuotedTotal      float64             `json:"quoted_total"`

	Actual      *entities.FRCAmounts `json:"actual,omitempty"`
	ActualTotal *float64             `json:"actual_total,omitempty"`

	Decision     string `json:"decision"`
	AdjustReason string `json:"adjust_reason,omitempty"`
}

type FRCResponse struct {
	ID            string            `json:"id"`
	EstimateID    string            `json:"estimate_id"`
	AdditionalsID string            `json:"additionals_id,omitempty"`
	Status        string            `json:"status"`
	VATPercentage float64           `json:"vat_percentage"`
	Markups       entities.Markups  `json:"markups"`
	LineItems     []FRCLineResponse `json:"line_items"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

func FromFRC(f entities.FRC) FRCResponse {
	lines := make([]FRCLineResponse, 0, len(f.LineItems))
	for _, l := range f.LineItems {
		lines = append(lines, FRCLineResponse{
			ID:               l.ID,
			Source:           string(l.Source),
			SourceLineID:     l.SourceLineID,
			ProcessType:      string(l.ProcessType),
			Description:      l.Description,
			PartType:         string(l.PartType),
			Action:           string(l.Action),
			QuotedLabourRate: l.QuotedLabourRate,
			QuotedPaintRate:  l.QuotedPaintRate,
			Quoted:           l.Quoted,
			QuotedTotal:      l.QuotedTotal,
			Actual:           l.Actual,
			ActualTotal:      l.ActualTotal,
			Decision:         string(l.Decision),
			AdjustReason:     l.AdjustReason,
		})
	}
	return FRCResponse{
		ID:            f.ID,
		EstimateID:    f.EstimateID,
		AdditionalsID: f.AdditionalsID,
		Status:        string(f.Status),
		VATPercentage: f.VATPercentage,
		Markups:       f.Markups,
		LineItems:     lines,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
		CompletedAt:   f.CompletedAt,
	}
}

type FRCSummaryResponse struct {
	FRCID  string `json:"frc_id"`
	Status string `json:"status"`
	costing.FRCSummary
	Lines []usecase.LineDelta `json:"lines"`
}

func FromFRCSummary(v usecase.FRCSummaryView) FRCSummaryResponse {
	lines := v.Lines
	if lines == nil {
		lines = []usecase.LineDelta{}
	}
	return FRCSummaryResponse{
		FRCID:      v.FRCID,
		Status:     string(v.Status),
		FRCSummary: v.Summary,
		Lines:      lines,
	}
}

type DecisionLogResponse struct {
	ID               string    `json:"id"`
	FRCID            string    `json:"frc_id"`
	LineID           string    `json:"line_id"`
	PreviousDecision string    `json:"previous_decision"`
	Decision         string    `json:"decision"`
	ActualTotal      *float64  `json:"actual_total,omitempty"`
	AdjustReason     string    `json:"adjust_reason,omitempty"`
	Actor            string    `json:"actor,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromDecisionLog(entries []entities.FRCDecisionLogEntry) []DecisionLogResponse {
	out := make([]DecisionLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, DecisionLogResponse{
			ID:               e.ID,
			FRCID:            e.FRCID,
			LineID:           e.LineID,
			PreviousDecision: string(e.PreviousDecision),
			Decision:         string(e.Decision),
			ActualTotal:      e.ActualTotal,
			AdjustReason:     e.AdjustReason,
			Actor:            e.Actor,
			CreatedAt:        e.CreatedAt,
		})
	}
	return out
}
