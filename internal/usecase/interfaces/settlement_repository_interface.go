package interfaces

//go:generate mockgen -source=settlement_repository_interface.go -destination=mocks/mock_settlement_repository.go -package=mock_interfaces

import (
	"context"

	"claims_xpto/internal/domain/entities"
)

// ISettlementRepository abstracts DynamoDB persistence for Settlement.
type ISettlementRepository interface {
	Create(ctx context.Context, s entities.Settlement) (entities.Settlement, error)
	GetByID(ctx context.Context, id string) (entities.Settlement, error)
	ListByFRCID(ctx context.Context, frcID string) ([]entities.Settlement, error)
}
