package interfaces

//go:generate mockgen -source=additionals_repository_interface.go -destination=mocks/mock_additionals_repository.go -package=mock_interfaces

import (
	"context"

	"claims_xpto/internal/domain/entities"
)

// IAdditionalsRepository abstracts DynamoDB persistence for AdditionalsRecord.
// An estimate has at most one additionals record.
type IAdditionalsRepository interface {
	Create(ctx context.Context, a entities.AdditionalsRecord) (entities.AdditionalsRecord, error)
	GetByID(ctx context.Context, id string) (entities.AdditionalsRecord, error)
	GetByEstimateID(ctx context.Context, estimateID string) (entities.AdditionalsRecord, error)
	Update(ctx context.Context, a entities.AdditionalsRecord) (entities.AdditionalsRecord, error)
}
