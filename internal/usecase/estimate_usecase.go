package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"claims_xpto/internal/config"
	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/infrastructure/metrics"
	"claims_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateEstimateInput carries a new estimate. Nil rates fall back to the
// configured defaults.
type CreateEstimateInput struct {
	AssessmentID       string
	ClientID           string
	VehicleRetailValue float64
	LabourRate         *float64
	PaintRate          *float64
	VATPercentage      *float64
	Markups            entities.Markups
	LineItems          []entities.LineItem
}

// RatesInput is a partial rate update; nil fields keep their current value.
type RatesInput struct {
	LabourRate    *float64
	PaintRate     *float64
	VATPercentage *float64
	Markups       *entities.Markups
}

// ThresholdView is an estimate total classified against the client's
// borderline write-off value.
type ThresholdView struct {
	EstimateID         string                  `json:"estimate_id"`
	EstimateTotal      float64                 `json:"estimate_total"`
	VehicleRetailValue float64                 `json:"vehicle_retail_value"`
	WriteOff           costing.WriteOffValues  `json:"write_off"`
	Threshold          costing.ThresholdResult `json:"threshold"`
}

type IEstimateUseCase interface {
	CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Estimate, error)
	AddLineItem(ctx context.Context, estimateID string, item entities.LineItem) (entities.Estimate, error)
	UpdateLineItem(ctx context.Context, estimateID, lineID string, item entities.LineItem) (entities.Estimate, error)
	DeleteLineItem(ctx context.Context, estimateID, lineID string) (entities.Estimate, error)
	UpdateRates(ctx context.Context, estimateID string, in RatesInput) (entities.Estimate, error)
	Finalize(ctx context.Context, estimateID string) (entities.Estimate, error)
	GetThreshold(ctx context.Context, estimateID string) (ThresholdView, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	writeOffs interfaces.IWriteOffRepository
	calc      *costing.Calculator
	defaults  config.DefaultsConfig
	metrics   *metrics.Metrics

	now   func() time.Time
	newID func() string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	writeOffs interfaces.IWriteOffRepository,
	calc *costing.Calculator,
	defaults config.DefaultsConfig,
	m *metrics.Metrics,
) *EstimateUseCase {
	return &EstimateUseCase{
		repo:      repo,
		writeOffs: writeOffs,
		calc:      calc,
		defaults:  defaults,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (u *EstimateUseCase) CreateEstimate(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	assessmentID := strings.TrimSpace(in.AssessmentID)
	if assessmentID == "" {
		return entities.Estimate{}, ErrInvalidAssessmentID
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Estimate{}, ErrInvalidClientID
	}
	if in.VehicleRetailValue < 0 {
		return entities.Estimate{}, ErrInvalidRetailValue
	}

	e := entities.Estimate{
		AssessmentID:       assessmentID,
		ClientID:           clientID,
		VehicleRetailValue: in.VehicleRetailValue,
		LabourRate:         u.defaults.LabourRate,
		PaintRate:          u.defaults.PaintRate,
		VATPercentage:      u.defaults.VATPercentage,
		Markups:            in.Markups,
		Status:             entities.EstimateStatusDraft,
	}
	if err := applyRates(&e, RatesInput{LabourRate: in.LabourRate, PaintRate: in.PaintRate, VATPercentage: in.VATPercentage}); err != nil {
		return entities.Estimate{}, err
	}
	if err := validateMarkups(e.Markups); err != nil {
		return entities.Estimate{}, err
	}

	// One estimate per assessment.
	if existing, err := u.repo.GetByAssessmentID(ctx, assessmentID); err != nil {
		return entities.Estimate{}, err
	} else if existing.ID != "" {
		return entities.Estimate{}, ErrEstimateAlreadyExists
	}

	e.LineItems = make([]entities.LineItem, 0, len(in.LineItems))
	for _, item := range in.LineItems {
		item.ID = u.newID()
		if err := validateLineItem(u.calc.Registry(), item); err != nil {
			recordUnknownProcessType(u.metrics, "create_estimate", err)
			return entities.Estimate{}, err
		}
		e.LineItems = append(e.LineItems, item)
	}

	priced, err := u.calc.PriceEstimate(e)
	if err != nil {
		recordUnknownProcessType(u.metrics, "create_estimate", err)
		return entities.Estimate{}, err
	}

	now := u.now()
	priced.ID = u.newID()
	priced.CreatedAt = now
	priced.UpdatedAt = now

	created, err := u.repo.Create(ctx, priced)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Estimate{}, ErrEstimateAlreadyExists
		}
		return entities.Estimate{}, err
	}
	zap.L().Info("[estimate][usecase] estimate created",
		zap.String("estimate_id", created.ID),
		zap.String("assessment_id", created.AssessmentID),
		zap.Int("line_items", len(created.LineItems)),
		zap.Float64("total", created.Total))
	return created, nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) GetByAssessmentID(ctx context.Context, assessmentID string) (entities.Estimate, error) {
	assessmentID = strings.TrimSpace(assessmentID)
	if assessmentID == "" {
		return entities.Estimate{}, ErrInvalidAssessmentID
	}

	e, err := u.repo.GetByAssessmentID(ctx, assessmentID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) AddLineItem(ctx context.Context, estimateID string, item entities.LineItem) (entities.Estimate, error) {
	e, err := u.loadDraft(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	item.ID = u.newID()
	if err := validateLineItem(u.calc.Registry(), item); err != nil {
		recordUnknownProcessType(u.metrics, "add_line_item", err)
		return entities.Estimate{}, err
	}
	e.LineItems = append(e.LineItems, item)

	return u.priceAndSave(ctx, e, "add_line_item")
}

func (u *EstimateUseCase) UpdateLineItem(ctx context.Context, estimateID, lineID string, item entities.LineItem) (entities.Estimate, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.Estimate{}, ErrInvalidLineID
	}
	e, err := u.loadDraft(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	idx := lineIndex(e.LineItems, lineID)
	if idx < 0 {
		return entities.Estimate{}, ErrLineItemNotFound
	}
	item.ID = lineID
	if err := validateLineItem(u.calc.Registry(), item); err != nil {
		recordUnknownProcessType(u.metrics, "update_line_item", err)
		return entities.Estimate{}, err
	}
	e.LineItems[idx] = item

	return u.priceAndSave(ctx, e, "update_line_item")
}

func (u *EstimateUseCase) DeleteLineItem(ctx context.Context, estimateID, lineID string) (entities.Estimate, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.Estimate{}, ErrInvalidLineID
	}
	e, err := u.loadDraft(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}

	idx := lineIndex(e.LineItems, lineID)
	if idx < 0 {
		return entities.Estimate{}, ErrLineItemNotFound
	}
	e.LineItems = append(e.LineItems[:idx:idx], e.LineItems[idx+1:]...)

	return u.priceAndSave(ctx, e, "delete_line_item")
}

// UpdateRates changes the rates of a draft estimate and re-derives every line
// from its quantities under the new rates.
func (u *EstimateUseCase) UpdateRates(ctx context.Context, estimateID string, in RatesInput) (entities.Estimate, error) {
	e, err := u.loadDraft(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := applyRates(&e, in); err != nil {
		return entities.Estimate{}, err
	}
	if in.Markups != nil {
		if err := validateMarkups(*in.Markups); err != nil {
			return entities.Estimate{}, err
		}
		e.Markups = *in.Markups
	}

	repriced, err := u.calc.RepriceEstimate(e)
	if err != nil {
		recordUnknownProcessType(u.metrics, "update_rates", err)
		return entities.Estimate{}, err
	}
	zap.L().Info("[estimate][usecase] rates updated",
		zap.String("estimate_id", e.ID),
		zap.Float64("labour_rate", e.LabourRate),
		zap.Float64("paint_rate", e.PaintRate),
		zap.Float64("vat_percentage", e.VATPercentage))
	return u.save(ctx, repriced)
}

func (u *EstimateUseCase) Finalize(ctx context.Context, estimateID string) (entities.Estimate, error) {
	e, err := u.loadDraft(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.Status = entities.EstimateStatusFinalized

	updated, err := u.save(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	zap.L().Info("[estimate][usecase] estimate finalized",
		zap.String("estimate_id", updated.ID),
		zap.Float64("total", updated.Total))
	return updated, nil
}

// GetThreshold classifies the estimate total against the borderline value of
// the client's write-off percentages. A client without percentages has no
// borderline and classifies as normal.
func (u *EstimateUseCase) GetThreshold(ctx context.Context, estimateID string) (ThresholdView, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return ThresholdView{}, err
	}

	pct, err := u.writeOffs.Get(ctx, e.ClientID)
	if err != nil {
		return ThresholdView{}, err
	}
	if pct.ClientID == "" {
		zap.L().Debug("[estimate][usecase] client has no write-off percentages",
			zap.String("estimate_id", e.ID),
			zap.String("client_id", e.ClientID))
	}

	values := costing.CalculateWriteOffValues(e.VehicleRetailValue, pct)
	result := costing.CalculateEstimateThreshold(e.Total, values.Borderline)
	u.metrics.Threshold(string(result.Color))

	return ThresholdView{
		EstimateID:         e.ID,
		EstimateTotal:      e.Total,
		VehicleRetailValue: e.VehicleRetailValue,
		WriteOff:           values,
		Threshold:          result,
	}, nil
}

func (u *EstimateUseCase) loadDraft(ctx context.Context, estimateID string) (entities.Estimate, error) {
	e, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.IsFinalized() {
		return entities.Estimate{}, ErrEstimateFinalized
	}
	return e, nil
}

func (u *EstimateUseCase) priceAndSave(ctx context.Context, e entities.Estimate, operation string) (entities.Estimate, error) {
	priced, err := u.calc.PriceEstimate(e)
	if err != nil {
		recordUnknownProcessType(u.metrics, operation, err)
		return entities.Estimate{}, err
	}
	return u.save(ctx, priced)
}

func (u *EstimateUseCase) save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	e.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

func applyRates(e *entities.Estimate, in RatesInput) error {
	if in.LabourRate != nil {
		e.LabourRate = *in.LabourRate
	}
	if in.PaintRate != nil {
		e.PaintRate = *in.PaintRate
	}
	if in.VATPercentage != nil {
		e.VATPercentage = *in.VATPercentage
	}
	if e.LabourRate < 0 || e.PaintRate < 0 {
		return ErrInvalidRate
	}
	if e.VATPercentage < 0 || e.VATPercentage > 100 {
		return ErrInvalidVATPercentage
	}
	return nil
}

func validateMarkups(m entities.Markups) error {
	for _, v := range []float64{m.OEMPercentage, m.AlternatePercentage, m.SecondHandPercentage, m.OutworkPercentage} {
		if v < 0 {
			return ErrInvalidRate
		}
	}
	return nil
}

func lineIndex(items []entities.LineItem, id string) int {
	for i, l := range items {
		if l.ID == id {
			return i
		}
	}
	return -1
}
