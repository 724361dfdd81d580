package interfaces

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/mock_estimate_repository.go -package=mock_interfaces

import (
	"context"
	"errors"

	"claims_xpto/internal/domain/entities"
)

// ErrAlreadyExists is returned by Create when the key is already taken.
var ErrAlreadyExists = errors.New("record already exists")

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Lookups return a zero Estimate (empty ID) and a nil error when nothing
// matches. Update replaces the whole record and returns a zero Estimate when
// it does not exist.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Estimate, error)
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
