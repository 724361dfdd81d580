package request

// TargetLineRequest names the line a removal or reversal points at.
type TargetLineRequest struct {
	LineID string `json:"line_id" binding:"required"`
}

type DeclineRequest struct {
	Reason string `json:"reason" binding:"required"`
}
