package entities

import "time"

// AdditionalAction is what an additionals line does to the final set of lines.
// An empty action is treated as AdditionalActionAdd.
type AdditionalAction string

const (
	AdditionalActionAdd      AdditionalAction = "add"
	AdditionalActionRemoved  AdditionalAction = "removed"
	AdditionalActionReversal AdditionalAction = "reversal"
)

// AdditionalStatus is the approval state of a single additionals line.
type AdditionalStatus string

const (
	AdditionalStatusPending  AdditionalStatus = "pending"
	AdditionalStatusApproved AdditionalStatus = "approved"
	AdditionalStatusDeclined AdditionalStatus = "declined"
)

var additionalStatusTransitions = map[AdditionalStatus]map[AdditionalStatus]bool{
	AdditionalStatusPending: {
		AdditionalStatusApproved: true,
		AdditionalStatusDeclined: true,
	},
	AdditionalStatusDeclined: {
		AdditionalStatusApproved: true,
	},
	AdditionalStatusApproved: {
		AdditionalStatusDeclined: true,
	},
}

// CanTransitionTo reports whether a line in status s may move to next.
func (s AdditionalStatus) CanTransitionTo(next AdditionalStatus) bool {
	return additionalStatusTransitions[s][next]
}

// AdditionalLineItem is a proposed change against a finalized estimate.
//
// For AdditionalActionRemoved, OriginalEstimateLineID names the estimate line
// being dropped. For AdditionalActionReversal, ReversesLineID names the
// estimate or additionals line being undone. Both carry a negative Total equal
// to the target's total at the time they were raised.
type AdditionalLineItem struct {
	LineItem

	Action                 AdditionalAction `json:"action"`
	Status                 AdditionalStatus `json:"status"`
	OriginalEstimateLineID string           `json:"original_estimate_line_id,omitempty"`
	ReversesLineID         string           `json:"reverses_line_id,omitempty"`
	DeclineReason          string           `json:"decline_reason,omitempty"`
}

// EffectiveAction returns the line action, defaulting to add.
func (l AdditionalLineItem) EffectiveAction() AdditionalAction {
	if l.Action == "" {
		return AdditionalActionAdd
	}
	return l.Action
}

// AdditionalsRecord groups the change-orders raised against one estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Rates are copied from the estimate when the record is opened and belong to the
// record from then on.
type AdditionalsRecord struct {
	ID            string               `json:"id"`
	EstimateID    string               `json:"estimate_id"`
	LineItems     []AdditionalLineItem `json:"line_items"`
	LabourRate    float64              `json:"labour_rate"`
	PaintRate     float64              `json:"paint_rate"`
	VATPercentage float64              `json:"vat_percentage"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// FindLine returns the additionals line with the given id and its index.
func (a AdditionalsRecord) FindLine(id string) (AdditionalLineItem, int, bool) {
	for i, l := range a.LineItems {
		if l.ID == id {
			return l, i, true
		}
	}
	return AdditionalLineItem{}, -1, false
}
