package repository

import (
	"context"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"
)

const settlementsFRCIDIndex = "frc_id-index"

type settlementItem struct {
	ID                 string                 `dynamodbav:"id"`
	FRCID              string                 `dynamodbav:"frc_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// SettlementDynamoRepository persists Settlement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: frc_id-index (PK: frc_id)
type SettlementDynamoRepository struct {
	table table
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb DynamoAPI, tableName string) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{table: newTable(ddb, tableName)}
}

func (r *SettlementDynamoRepository) Create(ctx context.Context, s entities.Settlement) (entities.Settlement, error) {
	if err := r.table.putNew(ctx, toSettlementItem(s)); err != nil {
		return entities.Settlement{}, err
	}
	return s, nil
}

func (r *SettlementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Settlement, error) {
	var it settlementItem
	found, err := r.table.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Settlement{}, err
	}
	return fromSettlementItem(it), nil
}

func (r *SettlementDynamoRepository) ListByFRCID(ctx context.Context, frcID string) ([]entities.Settlement, error) {
	var items []settlementItem
	if err := r.table.queryIndex(ctx, settlementsFRCIDIndex, "frc_id", frcID, &items); err != nil {
		return nil, err
	}

	out := make([]entities.Settlement, 0, len(items))
	for _, it := range items {
		out = append(out, fromSettlementItem(it))
	}
	return out, nil
}

func toSettlementItem(s entities.Settlement) settlementItem {
	return settlementItem{
		ID:                 s.ID,
		FRCID:              s.FRCID,
		Amount:             s.Amount,
		Date:               formatTime(s.Date),
		Status:             string(s.Status),
		ProviderPayload:    s.ProviderPayload,
		ProviderPayloadRaw: string(s.ProviderPayloadRaw),
	}
}

func fromSettlementItem(it settlementItem) entities.Settlement {
	var raw []byte
	if it.ProviderPayloadRaw != "" {
		raw = []byte(it.ProviderPayloadRaw)
	}
	return entities.Settlement{
		ID:                 it.ID,
		FRCID:              it.FRCID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.SettlementStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: raw,
	}
}
