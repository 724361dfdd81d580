package repository

import (
	"context"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"
)

type writeOffItem struct {
	ClientID   string  `dynamodbav:"client_id"`
	Borderline float64 `dynamodbav:"borderline"`
	Total      float64 `dynamodbav:"total"`
	Salvage    float64 `dynamodbav:"salvage"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// WriteOffDynamoRepository stores client write-off percentages.
//
// Table requirements:
//   - PK: client_id (string)
type WriteOffDynamoRepository struct {
	table table
}

var _ interfaces.IWriteOffRepository = (*WriteOffDynamoRepository)(nil)

func NewWriteOffDynamoRepository(ddb DynamoAPI, tableName string) *WriteOffDynamoRepository {
	t := newTable(ddb, tableName)
	t.keyName = "client_id"
	return &WriteOffDynamoRepository{table: t}
}

func (r *WriteOffDynamoRepository) Get(ctx context.Context, clientID string) (entities.WriteOffPercentages, error) {
	var it writeOffItem
	found, err := r.table.get(ctx, clientID, &it)
	if err != nil || !found {
		return entities.WriteOffPercentages{}, err
	}
	return entities.WriteOffPercentages{
		ClientID:   it.ClientID,
		Borderline: it.Borderline,
		Total:      it.Total,
		Salvage:    it.Salvage,
		UpdatedAt:  parseTime(it.UpdatedAt),
	}, nil
}

// Put creates or replaces the client's percentages.
func (r *WriteOffDynamoRepository) Put(ctx context.Context, p entities.WriteOffPercentages) (entities.WriteOffPercentages, error) {
	it := writeOffItem{
		ClientID:   p.ClientID,
		Borderline: p.Borderline,
		Total:      p.Total,
		Salvage:    p.Salvage,
		UpdatedAt:  formatTime(p.UpdatedAt),
	}
	if err := r.table.putAny(ctx, it); err != nil {
		return entities.WriteOffPercentages{}, err
	}
	return p, nil
}
