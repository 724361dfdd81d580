package usecase

import (
	"context"
	"strings"
	"time"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IClientUseCase manages per-client write-off percentages.
type IClientUseCase interface {
	GetWriteOff(ctx context.Context, clientID string) (entities.WriteOffPercentages, error)
	PutWriteOff(ctx context.Context, p entities.WriteOffPercentages) (entities.WriteOffPercentages, error)
}

type ClientUseCase struct {
	repo interfaces.IWriteOffRepository
	now  func() time.Time
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IWriteOffRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ClientUseCase) GetWriteOff(ctx context.Context, clientID string) (entities.WriteOffPercentages, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.WriteOffPercentages{}, ErrInvalidClientID
	}

	p, err := u.repo.Get(ctx, clientID)
	if err != nil {
		return entities.WriteOffPercentages{}, err
	}
	if p.ClientID == "" {
		return entities.WriteOffPercentages{}, ErrWriteOffNotFound
	}
	return p, nil
}

func (u *ClientUseCase) PutWriteOff(ctx context.Context, p entities.WriteOffPercentages) (entities.WriteOffPercentages, error) {
	p.ClientID = strings.TrimSpace(p.ClientID)
	if p.ClientID == "" {
		return entities.WriteOffPercentages{}, ErrInvalidClientID
	}
	for _, v := range []float64{p.Borderline, p.Total, p.Salvage} {
		if v < 0 || v > 100 {
			return entities.WriteOffPercentages{}, ErrInvalidWriteOffPercentage
		}
	}
	p.UpdatedAt = u.now()

	saved, err := u.repo.Put(ctx, p)
	if err != nil {
		return entities.WriteOffPercentages{}, err
	}
	zap.L().Info("[client][usecase] write-off percentages saved",
		zap.String("client_id", saved.ClientID),
		zap.Float64("borderline", saved.Borderline),
		zap.Float64("total", saved.Total),
		zap.Float64("salvage", saved.Salvage))
	return saved, nil
}
