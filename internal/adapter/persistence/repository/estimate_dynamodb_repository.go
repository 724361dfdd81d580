package repository

import (
	"context"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"
)

const estimatesAssessmentIDIndex = "assessment_id-index"

type markupsDocument struct {
	OEM        float64 `dynamodbav:"oem"`
	Alternate  float64 `dynamodbav:"alternate"`
	SecondHand float64 `dynamodbav:"second_hand"`
	Outwork    float64 `dynamodbav:"outwork"`
}

type estimateItem struct {
	ID                 string             `dynamodbav:"id"`
	AssessmentID       string             `dynamodbav:"assessment_id"`
	ClientID           string             `dynamodbav:"client_id,omitempty"`
	VehicleRetailValue float64            `dynamodbav:"vehicle_retail_value"`
	LineItems          []lineItemDocument `dynamodbav:"line_items"`
	LabourRate         float64            `dynamodbav:"labour_rate"`
	PaintRate          float64            `dynamodbav:"paint_rate"`
	VATPercentage      float64            `dynamodbav:"vat_percentage"`
	Markups            markupsDocument    `dynamodbav:"markups"`
	Subtotal           float64            `dynamodbav:"subtotal"`
	VATAmount          float64            `dynamodbav:"vat_amount"`
	Total              float64            `dynamodbav:"total"`
	Status             string             `dynamodbav:"status"`
	CreatedAt          string             `dynamodbav:"created_at"`
	UpdatedAt          string             `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: assessment_id-index (PK: assessment_id)
//
// Line items are embedded in the estimate item; an estimate is always read and
// written whole.
type EstimateDynamoRepository struct {
	table table
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{table: newTable(ddb, tableName)}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := r.table.putNew(ctx, toEstimateItem(e)); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	var it estimateItem
	found, err := r.table.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Estimate, error) {
	var items []estimateItem
	if err := r.table.queryIndex(ctx, estimatesAssessmentIDIndex, "assessment_id", assessmentID, &items); err != nil {
		return entities.Estimate{}, err
	}
	if len(items) == 0 {
		return entities.Estimate{}, nil
	}
	return fromEstimateItem(items[0]), nil
}

func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	replaced, err := r.table.putExisting(ctx, toEstimateItem(e))
	if err != nil || !replaced {
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:                 e.ID,
		AssessmentID:       e.AssessmentID,
		ClientID:           e.ClientID,
		VehicleRetailValue: e.VehicleRetailValue,
		LineItems:          toLineItemDocuments(e.LineItems),
		LabourRate:         e.LabourRate,
		PaintRate:          e.PaintRate,
		VATPercentage:      e.VATPercentage,
		Markups:            toMarkupsDocument(e.Markups),
		Subtotal:           e.Subtotal,
		VATAmount:          e.VATAmount,
		Total:              e.Total,
		Status:             string(e.Status),
		CreatedAt:          formatTime(e.CreatedAt),
		UpdatedAt:          formatTime(e.UpdatedAt),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	return entities.Estimate{
		ID:                 it.ID,
		AssessmentID:       it.AssessmentID,
		ClientID:           it.ClientID,
		VehicleRetailValue: it.VehicleRetailValue,
		LineItems:          fromLineItemDocuments(it.LineItems),
		LabourRate:         it.LabourRate,
		PaintRate:          it.PaintRate,
		VATPercentage:      it.VATPercentage,
		Markups:            fromMarkupsDocument(it.Markups),
		Subtotal:           it.Subtotal,
		VATAmount:          it.VATAmount,
		Total:              it.Total,
		Status:             entities.EstimateStatus(it.Status),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func toMarkupsDocument(m entities.Markups) markupsDocument {
	return markupsDocument{
		OEM:        m.OEMPercentage,
		Alternate:  m.AlternatePercentage,
		SecondHand: m.SecondHandPercentage,
		Outwork:    m.OutworkPercentage,
	}
}

func fromMarkupsDocument(d markupsDocument) entities.Markups {
	return entities.Markups{
		OEMPercentage:        d.OEM,
		AlternatePercentage:  d.Alternate,
		SecondHandPercentage: d.SecondHand,
		OutworkPercentage:    d.Outwork,
	}
}
