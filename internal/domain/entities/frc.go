package entities

import "time"

// FRCDecision is the reviewer's verdict on one FRC line.
type FRCDecision string

const (
	FRCDecisionPending  FRCDecision = "pending"
	FRCDecisionApproved FRCDecision = "approved"
	FRCDecisionAdjust   FRCDecision = "adjust"
)

func (d FRCDecision) IsValid() bool {
	switch d {
	case FRCDecisionPending, FRCDecisionApproved, FRCDecisionAdjust:
		return true
	}
	return false
}

// FRCLineSource tells where a composed FRC line came from.
type FRCLineSource string

const (
	FRCLineSourceEstimate    FRCLineSource = "estimate"
	FRCLineSourceAdditionals FRCLineSource = "additionals"
)

// FRCAmounts is one set of monetary components of an FRC line.
type FRCAmounts struct {
	PartPrice     float64 `json:"part_price"`
	StripAssemble float64 `json:"strip_assemble"`
	LabourCost    float64 `json:"labour_cost"`
	PaintCost     float64 `json:"paint_cost"`
	OutworkCharge float64 `json:"outwork_charge"`
}

// FRCLineItem is a line of the final repair costing.
//
// Quoted fields are a value snapshot taken at composition time and are never
// modified afterwards. Actual fields start nil and are filled during review.
type FRCLineItem struct {
	ID           string        `json:"id"`
	Source       FRCLineSource `json:"source"`
	SourceLineID string        `json:"source_line_id"`

	ProcessType ProcessType      `json:"process_type"`
	Description string           `json:"description"`
	PartType    PartType         `json:"part_type,omitempty"`
	Action      AdditionalAction `json:"action,omitempty"`

	QuotedStripAssembleHours *float64   `json:"quoted_strip_assemble_hours,omitempty"`
	QuotedLabourHours        *float64   `json:"quoted_labour_hours,omitempty"`
	QuotedPaintPanels        *float64   `json:"quoted_paint_panels,omitempty"`
	QuotedLabourRate         float64    `json:"quoted_labour_rate"`
	QuotedPaintRate          float64    `json:"quoted_paint_rate"`
	Quoted                   FRCAmounts `json:"quoted"`
	QuotedTotal              float64    `json:"quoted_total"`

	Actual      *FRCAmounts `json:"actual,omitempty"`
	ActualTotal *float64    `json:"actual_total,omitempty"`

	Decision     FRCDecision `json:"decision"`
	AdjustReason string      `json:"adjust_reason,omitempty"`
}

// FRCStatus is the lifecycle of an FRC run.
type FRCStatus string

const (
	FRCStatusInProgress FRCStatus = "in_progress"
	FRCStatusCompleted  FRCStatus = "completed"
)

// FRC is one final-repair-costing snapshot of an estimate plus its approved
// additionals.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
type FRC struct {
	ID            string        `json:"id"`
	EstimateID    string        `json:"estimate_id"`
	AdditionalsID string        `json:"additionals_id,omitempty"`
	LineItems     []FRCLineItem `json:"line_items"`
	VATPercentage float64       `json:"vat_percentage"`
	Status        FRCStatus     `json:"status"`

	// Markups is the estimate's markup table at start; it applies to the
	// estimate-sourced lines only.
	Markups Markups `json:"markups"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// FindLine returns the FRC line with the given id and its index.
func (f FRC) FindLine(id string) (FRCLineItem, int, bool) {
	for i, l := range f.LineItems {
		if l.ID == id {
			return l, i, true
		}
	}
	return FRCLineItem{}, -1, false
}

// FRCDecisionLogEntry is one append-only record of a decision change.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (frc_id-index): frc_id
type FRCDecisionLogEntry struct {
	ID               string      `json:"id"`
	FRCID            string      `json:"frc_id"`
	LineID           string      `json:"line_id"`
	PreviousDecision FRCDecision `json:"previous_decision"`
	Decision         FRCDecision `json:"decision"`
	ActualTotal      *float64    `json:"actual_total,omitempty"`
	AdjustReason     string      `json:"adjust_reason,omitempty"`
	Actor            string      `json:"actor,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}
