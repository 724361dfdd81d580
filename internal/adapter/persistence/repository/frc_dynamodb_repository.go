package repository

import (
	"context"
	"sort"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"
)

const (
	frcsEstimateIDIndex    = "estimate_id-index"
	frcDecisionsFRCIDIndex = "frc_id-index"
)

type frcAmountsDocument struct {
	PartPrice     float64 `dynamodbav:"part_price"`
	StripAssemble float64 `dynamodbav:"strip_assemble"`
	LabourCost    float64 `dynamodbav:"labour_cost"`
	PaintCost     float64 `dynamodbav:"paint_cost"`
	OutworkCharge float64 `dynamodbav:"outwork_charge"`
}

type frcLineDocument struct {
	ID                       string              `dynamodbav:"id"`
	Source                   string              `dynamodbav:"source"`
	SourceLineID             string              `dynamodbav:"source_line_id"`
	ProcessType              string              `dynamodbav:"process_type"`
	Description              string              `dynamodbav:"description"`
	PartType                 string              `dynamodbav:"part_type,omitempty"`
	Action                   string              `dynamodbav:"action,omitempty"`
	QuotedStripAssembleHours *float64            `dynamodbav:"quoted_strip_assemble_hours,omitempty"`
	QuotedLabourHours        *float64            `dynamodbav:"quoted_labour_hours,omitempty"`
	QuotedPaintPanels        *float64            `dynamodbav:"quoted_paint_panels,omitempty"`
	QuotedLabourRate         float64             `dynamodbav:"quoted_labour_rate"`
	QuotedPaintRate          float64             `dynamodbav:"quoted_paint_rate"`
	Quoted                   frcAmountsDocument  `dynamodbav:"quoted"`
	QuotedTotal              float64             `dynamodbav:"quoted_total"`
	Actual                   *frcAmountsDocument `dynamodbav:"actual,omitempty"`
	ActualTotal              *float64            `dynamodbav:"actual_total,omitempty"`
	Decision                 string              `dynamodbav:"decision"`
	AdjustReason             string              `dynamodbav:"adjust_reason,omitempty"`
}

type frcItem struct {
	ID            string            `dynamodbav:"id"`
	EstimateID    string            `dynamodbav:"estimate_id"`
	AdditionalsID string            `dynamodbav:"additionals_id,omitempty"`
	LineItems     []frcLineDocument `dynamodbav:"line_items"`
	VATPercentage float64           `dynamodbav:"vat_percentage"`
	Markups       markupsDocument   `dynamodbav:"markups"`
	Status        string            `dynamodbav:"status"`
	CreatedAt     string            `dynamodbav:"created_at"`
	UpdatedAt     string            `dynamodbav:"updated_at"`
	CompletedAt   string            `dynamodbav:"completed_at,omitempty"`
}

type frcDecisionItem struct {
	ID               string   `dynamodbav:"id"`
	FRCID            string   `dynamodbav:"frc_id"`
	LineID           string   `dynamodbav:"line_id"`
	PreviousDecision string   `dynamodbav:"previous_decision"`
	Decision         string   `dynamodbav:"decision"`
	ActualTotal      *float64 `dynamodbav:"actual_total,omitempty"`
	AdjustReason     string   `dynamodbav:"adjust_reason,omitempty"`
	Actor            string   `dynamodbav:"actor,omitempty"`
	CreatedAt        string   `dynamodbav:"created_at"`
}

// FRCDynamoRepository persists FRC runs in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: estimate_id-index (PK: estimate_id)
type FRCDynamoRepository struct {
	table table
}

var _ interfaces.IFRCRepository = (*FRCDynamoRepository)(nil)

func NewFRCDynamoRepository(ddb DynamoAPI, tableName string) *FRCDynamoRepository {
	return &FRCDynamoRepository{table: newTable(ddb, tableName)}
}

func (r *FRCDynamoRepository) Create(ctx context.Context, f entities.FRC) (entities.FRC, error) {
	if err := r.table.putNew(ctx, toFRCItem(f)); err != nil {
		return entities.FRC{}, err
	}
	return f, nil
}

func (r *FRCDynamoRepository) GetByID(ctx context.Context, id string) (entities.FRC, error) {
	var it frcItem
	found, err := r.table.get(ctx, id, &it)
	if err != nil || !found {
		return entities.FRC{}, err
	}
	return fromFRCItem(it), nil
}

func (r *FRCDynamoRepository) GetByEstimateID(ctx context.Context, estimateID string) (entities.FRC, error) {
	var items []frcItem
	if err := r.table.queryIndex(ctx, frcsEstimateIDIndex, "estimate_id", estimateID, &items); err != nil {
		return entities.FRC{}, err
	}
	if len(items) == 0 {
		return entities.FRC{}, nil
	}
	return fromFRCItem(items[0]), nil
}

func (r *FRCDynamoRepository) Update(ctx context.Context, f entities.FRC) (entities.FRC, error) {
	replaced, err := r.table.putExisting(ctx, toFRCItem(f))
	if err != nil || !replaced {
		return entities.FRC{}, err
	}
	return f, nil
}

// FRCDecisionLogDynamoRepository stores the decision audit trail.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: frc_id-index (PK: frc_id)
type FRCDecisionLogDynamoRepository struct {
	table table
}

var _ interfaces.IFRCDecisionLogRepository = (*FRCDecisionLogDynamoRepository)(nil)

func NewFRCDecisionLogDynamoRepository(ddb DynamoAPI, tableName string) *FRCDecisionLogDynamoRepository {
	return &FRCDecisionLogDynamoRepository{table: newTable(ddb, tableName)}
}

func (r *FRCDecisionLogDynamoRepository) Append(ctx context.Context, entry entities.FRCDecisionLogEntry) (entities.FRCDecisionLogEntry, error) {
	if err := r.table.putNew(ctx, toFRCDecisionItem(entry)); err != nil {
		return entities.FRCDecisionLogEntry{}, err
	}
	return entry, nil
}

// ListByFRCID returns the entries of one FRC, oldest first.
func (r *FRCDecisionLogDynamoRepository) ListByFRCID(ctx context.Context, frcID string) ([]entities.FRCDecisionLogEntry, error) {
	var items []frcDecisionItem
	if err := r.table.queryIndex(ctx, frcDecisionsFRCIDIndex, "frc_id", frcID, &items); err != nil {
		return nil, err
	}

	out := make([]entities.FRCDecisionLogEntry, 0, len(items))
	for _, it := range items {
		out = append(out, fromFRCDecisionItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func toFRCAmountsDocument(a entities.FRCAmounts) frcAmountsDocument {
	return frcAmountsDocument{
		PartPrice:     a.PartPrice,
		StripAssemble: a.StripAssemble,
		LabourCost:    a.LabourCost,
		PaintCost:     a.PaintCost,
		OutworkCharge: a.OutworkCharge,
	}
}

func fromFRCAmountsDocument(d frcAmountsDocument) entities.FRCAmounts {
	return entities.FRCAmounts{
		PartPrice:     d.PartPrice,
		StripAssemble: d.StripAssemble,
		LabourCost:    d.LabourCost,
		PaintCost:     d.PaintCost,
		OutworkCharge: d.OutworkCharge,
	}
}

func toFRCItem(f entities.FRC) frcItem {
	lines := make([]frcLineDocument, 0, len(f.LineItems))
	for _, l := range f.LineItems {
		d := frcLineDocument{
			ID:                       l.ID,
			Source:                   string(l.Source),
			SourceLineID:             l.SourceLineID,
			ProcessType:              string(l.ProcessType),
			Description:              l.Description,
			PartType:                 string(l.PartType),
			Action:                   string(l.Action),
			QuotedStripAssembleHours: l.QuotedStripAssembleHours,
			QuotedLabourHours:        l.QuotedLabourHours,
			QuotedPaintPanels:        l.QuotedPaintPanels,
			QuotedLabourRate:         l.QuotedLabourRate,
			QuotedPaintRate:          l.QuotedPaintRate,
			Quoted:                   toFRCAmountsDocument(l.Quoted),
			QuotedTotal:              l.QuotedTotal,
			ActualTotal:              l.ActualTotal,
			Decision:                 string(l.Decision),
			AdjustReason:             l.AdjustReason,
		}
		if l.Actual != nil {
			actual := toFRCAmountsDocument(*l.Actual)
			d.Actual = &actual
		}
		lines = append(lines, d)
	}
	return frcItem{
		ID:            f.ID,
		EstimateID:    f.EstimateID,
		AdditionalsID: f.AdditionalsID,
		LineItems:     lines,
		VATPercentage: f.VATPercentage,
		Markups:       toMarkupsDocument(f.Markups),
		Status:        string(f.Status),
		CreatedAt:     formatTime(f.CreatedAt),
		UpdatedAt:     formatTime(f.UpdatedAt),
		CompletedAt:   formatTimePtr(f.CompletedAt),
	}
}

func fromFRCItem(it frcItem) entities.FRC {
	lines := make([]entities.FRCLineItem, 0, len(it.LineItems))
	for _, d := range it.LineItems {
		l := entities.FRCLineItem{
			ID:                       d.ID,
			Source:                   entities.FRCLineSource(d.Source),
			SourceLineID:             d.SourceLineID,
			ProcessType:              entities.ProcessType(d.ProcessType),
			Description:              d.Description,
			PartType:                 entities.PartType(d.PartType),
			Action:                   entities.AdditionalAction(d.Action),
			QuotedStripAssembleHours: d.QuotedStripAssembleHours,
			QuotedLabourHours:        d.QuotedLabourHours,
			QuotedPaintPanels:        d.QuotedPaintPanels,
			QuotedLabourRate:         d.QuotedLabourRate,
			QuotedPaintRate:          d.QuotedPaintRate,
			Quoted:                   fromFRCAmountsDocument(d.Quoted),
			QuotedTotal:              d.QuotedTotal,
			ActualTotal:              d.ActualTotal,
			Decision:                 entities.FRCDecision(d.Decision),
			AdjustReason:             d.AdjustReason,
		}
		if d.Actual != nil {
			actual := fromFRCAmountsDocument(*d.Actual)
			l.Actual = &actual
		}
		lines = append(lines, l)
	}
	return entities.FRC{
		ID:            it.ID,
		EstimateID:    it.EstimateID,
		AdditionalsID: it.AdditionalsID,
		LineItems:     lines,
		VATPercentage: it.VATPercentage,
		Markups:       fromMarkupsDocument(it.Markups),
		Status:        entities.FRCStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		CompletedAt:   parseTimePtr(it.CompletedAt),
	}
}

func toFRCDecisionItem(e entities.FRCDecisionLogEntry) frcDecisionItem {
	return frcDecisionItem{
		ID:               e.ID,
		FRCID:            e.FRCID,
		LineID:           e.LineID,
		PreviousDecision: string(e.PreviousDecision),
		Decision:         string(e.Decision),
		ActualTotal:      e.ActualTotal,
		AdjustReason:     e.AdjustReason,
		Actor:            e.Actor,
		CreatedAt:        formatTime(e.CreatedAt),
	}
}

func fromFRCDecisionItem(it frcDecisionItem) entities.FRCDecisionLogEntry {
	return entities.FRCDecisionLogEntry{
		ID:               it.ID,
		FRCID:            it.FRCID,
		LineID:           it.LineID,
		PreviousDecision: entities.FRCDecision(it.PreviousDecision),
		Decision:         entities.FRCDecision(it.Decision),
		ActualTotal:      it.ActualTotal,
		AdjustReason:     it.AdjustReason,
		Actor:            it.Actor,
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
