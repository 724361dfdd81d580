package repository

import (
	"context"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"
)

const additionalsEstimateIDIndex = "estimate_id-index"

type additionalLineDocument struct {
	Line                   lineItemDocument `dynamodbav:"line"`
	Action                 string           `dynamodbav:"action"`
	Status                 string           `dynamodbav:"status"`
	OriginalEstimateLineID string           `dynamodbav:"original_estimate_line_id,omitempty"`
	ReversesLineID         string           `dynamodbav:"reverses_line_id,omitempty"`
	DeclineReason          string           `dynamodbav:"decline_reason,omitempty"`
}

type additionalsItem struct {
	ID            string                   `dynamodbav:"id"`
	EstimateID    string                   `dynamodbav:"estimate_id"`
	LineItems     []additionalLineDocument `dynamodbav:"line_items"`
	LabourRate    float64                  `dynamodbav:"labour_rate"`
	PaintRate     float64                  `dynamodbav:"paint_rate"`
	VATPercentage float64                  `dynamodbav:"vat_percentage"`
	CreatedAt     string                   `dynamodbav:"created_at"`
	UpdatedAt     string                   `dynamodbav:"updated_at"`
}

// AdditionalsDynamoRepository persists AdditionalsRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)
type AdditionalsDynamoRepository struct {
	table table
}

var _ interfaces.IAdditionalsRepository = (*AdditionalsDynamoRepository)(nil)

func NewAdditionalsDynamoRepository(ddb DynamoAPI, tableName string) *AdditionalsDynamoRepository {
	return &AdditionalsDynamoRepository{table: newTable(ddb, tableName)}
}

func (r *AdditionalsDynamoRepository) Create(ctx context.Context, a entities.AdditionalsRecord) (entities.AdditionalsRecord, error) {
	if err := r.table.putNew(ctx, toAdditionalsItem(a)); err != nil {
		return entities.AdditionalsRecord{}, err
	}
	return a, nil
}

func (r *AdditionalsDynamoRepository) GetByID(ctx context.Context, id string) (entities.AdditionalsRecord, error) {
	var it additionalsItem
	found, err := r.table.get(ctx, id, &it)
	if err != nil || !found {
		return entities.AdditionalsRecord{}, err
	}
	return fromAdditionalsItem(it), nil
}

func (r *AdditionalsDynamoRepository) GetByEstimateID(ctx context.Context, estimateID string) (entities.AdditionalsRecord, error) {
	var items []additionalsItem
	if err := r.table.queryIndex(ctx, additionalsEstimateIDIndex, "estimate_id", estimateID, &items); err != nil {
		return entities.AdditionalsRecord{}, err
	}
	if len(items) == 0 {
		return entities.AdditionalsRecord{}, nil
	}
	return fromAdditionalsItem(items[0]), nil
}

func (r *AdditionalsDynamoRepository) Update(ctx context.Context, a entities.AdditionalsRecord) (entities.AdditionalsRecord, error) {
	replaced, err := r.table.putExisting(ctx, toAdditionalsItem(a))
	if err != nil || !replaced {
		return entities.AdditionalsRecord{}, err
	}
	return a, nil
}

func toAdditionalsItem(a entities.AdditionalsRecord) additionalsItem {
	lines := make([]additionalLineDocument, 0, len(a.LineItems))
	for _, l := range a.LineItems {
		lines = append(lines, additionalLineDocument{
			Line:                   toLineItemDocument(l.LineItem),
			Action:                 string(l.EffectiveAction()),
			Status:                 string(l.Status),
			OriginalEstimateLineID: l.OriginalEstimateLineID,
			ReversesLineID:         l.ReversesLineID,
			DeclineReason:          l.DeclineReason,
		})
	}
	return additionalsItem{
		ID:            a.ID,
		EstimateID:    a.EstimateID,
		LineItems:     lines,
		LabourRate:    a.LabourRate,
		PaintRate:     a.PaintRate,
		VATPercentage: a.VATPercentage,
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	}
}

func fromAdditionalsItem(it additionalsItem) entities.AdditionalsRecord {
	lines := make([]entities.AdditionalLineItem, 0, len(it.LineItems))
	for _, d := range it.LineItems {
		lines = append(lines, entities.AdditionalLineItem{
			LineItem:               fromLineItemDocument(d.Line),
			Action:                 entities.AdditionalAction(d.Action),
			Status:                 entities.AdditionalStatus(d.Status),
			OriginalEstimateLineID: d.OriginalEstimateLineID,
			ReversesLineID:         d.ReversesLineID,
			DeclineReason:          d.DeclineReason,
		})
	}
	return entities.AdditionalsRecord{
		ID:            it.ID,
		EstimateID:    it.EstimateID,
		LineItems:     lines,
		LabourRate:    it.LabourRate,
		PaintRate:     it.PaintRate,
		VATPercentage: it.VATPercentage,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
