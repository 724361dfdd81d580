package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/infrastructure/metrics"
	"claims_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DecideInput is a reviewer's decision on one FRC line.
type DecideInput struct {
	Decision    entities.FRCDecision
	ActualTotal *float64
	Actual      *entities.FRCAmounts
	Reason      string
	Actor       string
}

// LineDelta compares one FRC line's actual total with its quoted total.
// Deltas is nil while the line has no actual total.
type LineDelta struct {
	LineID      string               `json:"line_id"`
	Description string               `json:"description"`
	Decision    entities.FRCDecision `json:"decision"`
	QuotedTotal float64              `json:"quoted_total"`
	ActualTotal *float64             `json:"actual_total,omitempty"`
	Deltas      *costing.Deltas      `json:"deltas,omitempty"`
}

// FRCSummaryView is the reconciliation summary of an FRC run.
type FRCSummaryView struct {
	FRCID   string             `json:"frc_id"`
	Status  entities.FRCStatus `json:"status"`
	Summary costing.FRCSummary `json:"summary"`
	Lines   []LineDelta        `json:"lines"`
}

type IFRCUseCase interface {
	Start(ctx context.Context, estimateID string) (entities.FRC, error)
	GetByID(ctx context.Context, id string) (entities.FRC, error)
	Decide(ctx context.Context, frcID, lineID string, in DecideInput) (entities.FRC, error)
	Summary(ctx context.Context, frcID string) (FRCSummaryView, error)
	Complete(ctx context.Context, frcID string) (entities.FRC, error)
	ListDecisions(ctx context.Context, frcID string) ([]entities.FRCDecisionLogEntry, error)
}

type FRCUseCase struct {
	repo            interfaces.IFRCRepository
	decisions       interfaces.IFRCDecisionLogRepository
	estimateRepo    interfaces.IEstimateRepository
	additionalsRepo interfaces.IAdditionalsRepository
	calc            *costing.Calculator
	metrics         *metrics.Metrics

	now   func() time.Time
	newID func() string
}

var _ IFRCUseCase = (*FRCUseCase)(nil)

func NewFRCUseCase(
	repo interfaces.IFRCRepository,
	decisions interfaces.IFRCDecisionLogRepository,
	estimateRepo interfaces.IEstimateRepository,
	additionalsRepo interfaces.IAdditionalsRepository,
	calc *costing.Calculator,
	m *metrics.Metrics,
) *FRCUseCase {
	return &FRCUseCase{
		repo:            repo,
		decisions:       decisions,
		estimateRepo:    estimateRepo,
		additionalsRepo: additionalsRepo,
		calc:            calc,
		metrics:         m,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewString,
	}
}

// Start composes the final line set of a finalized estimate (and its
// additionals, if any) into a new in-progress FRC.
func (u *FRCUseCase) Start(ctx context.Context, estimateID string) (entities.FRC, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.FRC{}, ErrInvalidEstimateID
	}
	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.FRC{}, err
	}
	if est.ID == "" {
		return entities.FRC{}, ErrEstimateNotFound
	}
	if !est.IsFinalized() {
		return entities.FRC{}, ErrEstimateNotFinalized
	}

	if existing, err := u.repo.GetByEstimateID(ctx, est.ID); err != nil {
		return entities.FRC{}, err
	} else if existing.ID != "" {
		return entities.FRC{}, ErrFRCAlreadyStarted
	}

	var additionals *entities.AdditionalsRecord
	rec, err := u.additionalsRepo.GetByEstimateID(ctx, est.ID)
	if err != nil {
		return entities.FRC{}, err
	}
	if rec.ID != "" {
		additionals = &rec
	}

	lines, err := u.calc.ComposeFinalEstimateLines(est, additionals)
	if err != nil {
		recordUnknownProcessType(u.metrics, "compose_frc", err)
		return entities.FRC{}, err
	}
	counts := map[entities.FRCLineSource]int{}
	for i := range lines {
		lines[i].ID = u.newID()
		counts[lines[i].Source]++
	}

	now := u.now()
	f := entities.FRC{
		ID:            u.newID(),
		EstimateID:    est.ID,
		AdditionalsID: rec.ID,
		LineItems:     lines,
		VATPercentage: est.VATPercentage,
		Markups:       est.Markups,
		Status:        entities.FRCStatusInProgress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, f)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.FRC{}, ErrFRCAlreadyStarted
		}
		return entities.FRC{}, err
	}

	for source, n := range counts {
		u.metrics.FRCLinesComposed(string(source), n)
	}
	zap.L().Info("[frc][usecase] frc started",
		zap.String("frc_id", created.ID),
		zap.String("estimate_id", created.EstimateID),
		zap.String("additionals_id", created.AdditionalsID),
		zap.Int("estimate_lines", counts[entities.FRCLineSourceEstimate]),
		zap.Int("additionals_lines", counts[entities.FRCLineSourceAdditionals]))
	return created, nil
}

func (u *FRCUseCase) GetByID(ctx context.Context, id string) (entities.FRC, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FRC{}, ErrInvalidFRCID
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.FRC{}, err
	}
	if f.ID == "" {
		return entities.FRC{}, ErrFRCNotFound
	}
	return f, nil
}

// Decide applies a decision to one line of an in-progress FRC. The decision
// log entry is appended before the FRC is saved, so a failed append leaves the
// FRC unchanged.
func (u *FRCUseCase) Decide(ctx context.Context, frcID, lineID string, in DecideInput) (entities.FRC, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.FRC{}, ErrInvalidLineID
	}
	f, err := u.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRC{}, err
	}
	if f.Status == entities.FRCStatusCompleted {
		return entities.FRC{}, ErrFRCCompleted
	}

	line, idx, ok := f.FindLine(lineID)
	if !ok {
		return entities.FRC{}, ErrFRCLineNotFound
	}
	decided, err := costing.ApplyDecision(line, costing.DecisionInput{
		Decision:    in.Decision,
		ActualTotal: in.ActualTotal,
		Actual:      in.Actual,
		Reason:      in.Reason,
	})
	if err != nil {
		return entities.FRC{}, err
	}
	f.LineItems[idx] = decided

	now := u.now()
	entry := entities.FRCDecisionLogEntry{
		ID:               u.newID(),
		FRCID:            f.ID,
		LineID:           lineID,
		PreviousDecision: line.Decision,
		Decision:         decided.Decision,
		ActualTotal:      decided.ActualTotal,
		AdjustReason:     decided.AdjustReason,
		Actor:            strings.TrimSpace(in.Actor),
		CreatedAt:        now,
	}
	if _, err := u.decisions.Append(ctx, entry); err != nil {
		zap.L().Error("[frc][usecase] decision log append failed",
			zap.String("frc_id", f.ID),
			zap.String("line_id", lineID),
			zap.Error(err))
		return entities.FRC{}, err
	}

	f.UpdatedAt = now
	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		zap.L().Error("[frc][usecase] decision save failed after log append",
			zap.String("frc_id", f.ID),
			zap.String("line_id", lineID),
			zap.String("log_entry_id", entry.ID),
			zap.Error(err))
		return entities.FRC{}, err
	}
	if updated.ID == "" {
		return entities.FRC{}, ErrFRCNotFound
	}

	u.metrics.FRCDecision(string(decided.Decision))
	zap.L().Info("[frc][usecase] decision applied",
		zap.String("frc_id", f.ID),
		zap.String("line_id", lineID),
		zap.String("from", string(line.Decision)),
		zap.String("to", string(decided.Decision)),
		zap.String("actor", entry.Actor))
	return updated, nil
}

func (u *FRCUseCase) Summary(ctx context.Context, frcID string) (FRCSummaryView, error) {
	f, err := u.GetByID(ctx, frcID)
	if err != nil {
		return FRCSummaryView{}, err
	}
	s, err := u.calc.SummarizeFRC(f)
	if err != nil {
		recordUnknownProcessType(u.metrics, "summarize_frc", err)
		return FRCSummaryView{}, err
	}

	lines := make([]LineDelta, 0, len(f.LineItems))
	for _, l := range f.LineItems {
		ld := LineDelta{
			LineID:      l.ID,
			Description: l.Description,
			Decision:    l.Decision,
			QuotedTotal: l.QuotedTotal,
			ActualTotal: l.ActualTotal,
		}
		if l.ActualTotal != nil {
			d := costing.CalculateDeltas(l.QuotedTotal, *l.ActualTotal)
			ld.Deltas = &d
		}
		lines = append(lines, ld)
	}
	return FRCSummaryView{FRCID: f.ID, Status: f.Status, Summary: s, Lines: lines}, nil
}

// Complete closes an FRC once every line is decided and valid.
func (u *FRCUseCase) Complete(ctx context.Context, frcID string) (entities.FRC, error) {
	f, err := u.GetByID(ctx, frcID)
	if err != nil {
		return entities.FRC{}, err
	}
	if f.Status == entities.FRCStatusCompleted {
		return entities.FRC{}, ErrFRCCompleted
	}
	if err := costing.ValidateFRCForCompletion(f); err != nil {
		return entities.FRC{}, err
	}

	now := u.now()
	f.Status = entities.FRCStatusCompleted
	f.CompletedAt = &now
	f.UpdatedAt = now
	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.FRC{}, err
	}
	if updated.ID == "" {
		return entities.FRC{}, ErrFRCNotFound
	}

	u.metrics.FRCCompleted()
	zap.L().Info("[frc][usecase] frc completed", zap.String("frc_id", updated.ID))
	return updated, nil
}

func (u *FRCUseCase) ListDecisions(ctx context.Context, frcID string) ([]entities.FRCDecisionLogEntry, error) {
	f, err := u.GetByID(ctx, frcID)
	if err != nil {
		return nil, err
	}
	return u.decisions.ListByFRCID(ctx, f.ID)
}
