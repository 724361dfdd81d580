package interfaces

//go:generate mockgen -source=frc_repository_interface.go -destination=mocks/mock_frc_repository.go -package=mock_interfaces

import (
	"context"

	"claims_xpto/internal/domain/entities"
)

// IFRCRepository abstracts DynamoDB persistence for FRC runs.
type IFRCRepository interface {
	Create(ctx context.Context, f entities.FRC) (entities.FRC, error)
	GetByID(ctx context.Context, id string) (entities.FRC, error)
	GetByEstimateID(ctx context.Context, estimateID string) (entities.FRC, error)
	Update(ctx context.Context, f entities.FRC) (entities.FRC, error)
}

// IFRCDecisionLogRepository is the append-only audit trail of FRC decisions.
type IFRCDecisionLogRepository interface {
	Append(ctx context.Context, entry entities.FRCDecisionLogEntry) (entities.FRCDecisionLogEntry, error)
	ListByFRCID(ctx context.Context, frcID string) ([]entities.FRCDecisionLogEntry, error)
}
