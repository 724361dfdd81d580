package costing

import (
	"errors"
	"fmt"

	"claims_xpto/internal/domain/entities"
)

var (
	ErrUnknownProcessType        = errors.New("unknown process type")
	ErrInvalidDecision           = errors.New("invalid frc decision")
	ErrInvalidDecisionTransition = errors.New("invalid frc decision transition")
	ErrAdjustReasonRequired      = errors.New("adjust reason is required")
	ErrAdjustActualRequired      = errors.New("actual total is required when adjusting")
)

// UnknownProcessTypeError reports a line item whose process type has no
// registry entry. It matches ErrUnknownProcessType with errors.Is.
type UnknownProcessTypeError struct {
	Code   entities.ProcessType
	LineID string
}

func (e *UnknownProcessTypeError) Error() string {
	if e.LineID != "" {
		return fmt.Sprintf("unknown process type %q on line %s", string(e.Code), e.LineID)
	}
	return fmt.Sprintf("unknown process type %q", string(e.Code))
}

func (e *UnknownProcessTypeError) Is(target error) bool {
	return target == ErrUnknownProcessType
}
