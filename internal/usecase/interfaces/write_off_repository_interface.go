package interfaces

//go:generate mockgen -source=write_off_repository_interface.go -destination=mocks/mock_write_off_repository.go -package=mock_interfaces

import (
	"context"

	"claims_xpto/internal/domain/entities"
)

// IWriteOffRepository stores per-client write-off percentages.
type IWriteOffRepository interface {
	Get(ctx context.Context, clientID string) (entities.WriteOffPercentages, error)
	Put(ctx context.Context, p entities.WriteOffPercentages) (entities.WriteOffPercentages, error)
}
