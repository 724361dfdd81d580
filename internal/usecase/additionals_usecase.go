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

// AdditionalsView is an additionals record with its per-status totals.
type AdditionalsView struct {
	Record entities.AdditionalsRecord `json:"record"`
	Totals costing.AdditionalsTotals  `json:"totals"`
}

// IAdditionalsUseCase manages the supplementary work raised after an
// estimate is finalized.
//
// Every line starts pending. Removals and reversals are stored as mirror
// lines with the negated total of their target, and each target can only be
// removed or reversed once.
type IAdditionalsUseCase interface {
	Create(ctx context.Context, estimateID string) (AdditionalsView, error)
	GetByID(ctx context.Context, id string) (AdditionalsView, error)
	AddLine(ctx context.Context, additionalsID string, item entities.LineItem) (AdditionalsView, error)
	RemoveLine(ctx context.Context, additionalsID, estimateLineID string) (AdditionalsView, error)
	ReverseLine(ctx context.Context, additionalsID, targetLineID string) (AdditionalsView, error)
	Approve(ctx context.Context, additionalsID, lineID string) (AdditionalsView, error)
	Decline(ctx context.Context, additionalsID, lineID, reason string) (AdditionalsView, error)
}

type AdditionalsUseCase struct {
	repo         interfaces.IAdditionalsRepository
	estimateRepo interfaces.IEstimateRepository
	calc         *costing.Calculator
	metrics      *metrics.Metrics

	now   func() time.Time
	newID func() string
}

var _ IAdditionalsUseCase = (*AdditionalsUseCase)(nil)

func NewAdditionalsUseCase(repo interfaces.IAdditionalsRepository, estimateRepo interfaces.IEstimateRepository, calc *costing.Calculator, m *metrics.Metrics) *AdditionalsUseCase {
	return &AdditionalsUseCase{
		repo:         repo,
		estimateRepo: estimateRepo,
		calc:         calc,
		metrics:      m,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

// Create opens the additionals record of a finalized estimate, snapshotting
// the estimate's rates and VAT.
func (u *AdditionalsUseCase) Create(ctx context.Context, estimateID string) (AdditionalsView, error) {
	est, err := u.loadEstimate(ctx, estimateID)
	if err != nil {
		return AdditionalsView{}, err
	}
	if !est.IsFinalized() {
		return AdditionalsView{}, ErrEstimateNotFinalized
	}

	if existing, err := u.repo.GetByEstimateID(ctx, est.ID); err != nil {
		return AdditionalsView{}, err
	} else if existing.ID != "" {
		return AdditionalsView{}, ErrAdditionalsAlreadyExists
	}

	now := u.now()
	rec := entities.AdditionalsRecord{
		ID:            u.newID(),
		EstimateID:    est.ID,
		LineItems:     []entities.AdditionalLineItem{},
		LabourRate:    est.LabourRate,
		PaintRate:     est.PaintRate,
		VATPercentage: est.VATPercentage,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return AdditionalsView{}, ErrAdditionalsAlreadyExists
		}
		return AdditionalsView{}, err
	}
	zap.L().Info("[additionals][usecase] additionals created",
		zap.String("additionals_id", created.ID),
		zap.String("estimate_id", created.EstimateID))
	return view(created), nil
}

func (u *AdditionalsUseCase) GetByID(ctx context.Context, id string) (AdditionalsView, error) {
	rec, err := u.load(ctx, id)
	if err != nil {
		return AdditionalsView{}, err
	}
	return view(rec), nil
}

// AddLine raises new work priced at the additionals' rates.
func (u *AdditionalsUseCase) AddLine(ctx context.Context, additionalsID string, item entities.LineItem) (AdditionalsView, error) {
	rec, err := u.load(ctx, additionalsID)
	if err != nil {
		return AdditionalsView{}, err
	}

	item.ID = u.newID()
	if err := validateLineItem(u.calc.Registry(), item); err != nil {
		recordUnknownProcessType(u.metrics, "add_additional_line", err)
		return AdditionalsView{}, err
	}
	total, err := u.calc.CalculateLineItemTotal(item, rec.LabourRate, rec.PaintRate)
	if err != nil {
		recordUnknownProcessType(u.metrics, "add_additional_line", err)
		return AdditionalsView{}, err
	}
	item.Total = total

	rec.LineItems = append(rec.LineItems, entities.AdditionalLineItem{
		LineItem: item,
		Action:   entities.AdditionalActionAdd,
		Status:   entities.AdditionalStatusPending,
	})
	return u.save(ctx, rec, entities.AdditionalActionAdd)
}

// RemoveLine proposes dropping an original estimate line.
func (u *AdditionalsUseCase) RemoveLine(ctx context.Context, additionalsID, estimateLineID string) (AdditionalsView, error) {
	estimateLineID = strings.TrimSpace(estimateLineID)
	if estimateLineID == "" {
		return AdditionalsView{}, ErrInvalidLineID
	}
	rec, err := u.load(ctx, additionalsID)
	if err != nil {
		return AdditionalsView{}, err
	}
	est, err := u.loadEstimate(ctx, rec.EstimateID)
	if err != nil {
		return AdditionalsView{}, err
	}

	original, ok := est.FindLine(estimateLineID)
	if !ok {
		return AdditionalsView{}, ErrLineItemNotFound
	}
	if isTargeted(rec, estimateLineID) {
		return AdditionalsView{}, ErrLineAlreadyTargeted
	}

	mirror, err := u.calc.NegateLineItem(original, est.LabourRate, est.PaintRate)
	if err != nil {
		recordUnknownProcessType(u.metrics, "remove_line", err)
		return AdditionalsView{}, err
	}
	mirror.ID = u.newID()

	rec.LineItems = append(rec.LineItems, entities.AdditionalLineItem{
		LineItem:               mirror,
		Action:                 entities.AdditionalActionRemoved,
		Status:                 entities.AdditionalStatusPending,
		OriginalEstimateLineID: original.ID,
	})
	return u.save(ctx, rec, entities.AdditionalActionRemoved)
}

// ReverseLine proposes undoing an original estimate line or an approved
// added line.
func (u *AdditionalsUseCase) ReverseLine(ctx context.Context, additionalsID, targetLineID string) (AdditionalsView, error) {
	targetLineID = strings.TrimSpace(targetLineID)
	if targetLineID == "" {
		return AdditionalsView{}, ErrInvalidLineID
	}
	rec, err := u.load(ctx, additionalsID)
	if err != nil {
		return AdditionalsView{}, err
	}
	if isTargeted(rec, targetLineID) {
		return AdditionalsView{}, ErrLineAlreadyTargeted
	}

	var (
		target     entities.LineItem
		labourRate = rec.LabourRate
		paintRate  = rec.PaintRate
	)
	if line, _, ok := rec.FindLine(targetLineID); ok {
		if line.EffectiveAction() != entities.AdditionalActionAdd || line.Status != entities.AdditionalStatusApproved {
			return AdditionalsView{}, ErrInvalidReversalTarget
		}
		target = line.LineItem
	} else {
		est, err := u.loadEstimate(ctx, rec.EstimateID)
		if err != nil {
			return AdditionalsView{}, err
		}
		original, ok := est.FindLine(targetLineID)
		if !ok {
			return AdditionalsView{}, ErrLineItemNotFound
		}
		target = original
		labourRate, paintRate = est.LabourRate, est.PaintRate
	}

	mirror, err := u.calc.NegateLineItem(target, labourRate, paintRate)
	if err != nil {
		recordUnknownProcessType(u.metrics, "reverse_line", err)
		return AdditionalsView{}, err
	}
	mirror.ID = u.newID()

	rec.LineItems = append(rec.LineItems, entities.AdditionalLineItem{
		LineItem:       mirror,
		Action:         entities.AdditionalActionReversal,
		Status:         entities.AdditionalStatusPending,
		ReversesLineID: target.ID,
	})
	return u.save(ctx, rec, entities.AdditionalActionReversal)
}

func (u *AdditionalsUseCase) Approve(ctx context.Context, additionalsID, lineID string) (AdditionalsView, error) {
	return u.transition(ctx, additionalsID, lineID, entities.AdditionalStatusApproved, "")
}

func (u *AdditionalsUseCase) Decline(ctx context.Context, additionalsID, lineID, reason string) (AdditionalsView, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return AdditionalsView{}, ErrDeclineReasonRequired
	}
	return u.transition(ctx, additionalsID, lineID, entities.AdditionalStatusDeclined, reason)
}

func (u *AdditionalsUseCase) transition(ctx context.Context, additionalsID, lineID string, next entities.AdditionalStatus, reason string) (AdditionalsView, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return AdditionalsView{}, ErrInvalidLineID
	}
	rec, err := u.load(ctx, additionalsID)
	if err != nil {
		return AdditionalsView{}, err
	}

	line, idx, ok := rec.FindLine(lineID)
	if !ok {
		return AdditionalsView{}, ErrLineItemNotFound
	}
	if !line.Status.CanTransitionTo(next) {
		return AdditionalsView{}, ErrInvalidStatusTransition
	}
	if err := checkReversalPairing(rec, line, next); err != nil {
		return AdditionalsView{}, err
	}

	previous := line.Status
	line.Status = next
	line.DeclineReason = reason
	rec.LineItems[idx] = line

	out, err := u.save(ctx, rec, "")
	if err != nil {
		return AdditionalsView{}, err
	}
	zap.L().Info("[additionals][usecase] line status changed",
		zap.String("additionals_id", rec.ID),
		zap.String("line_id", lineID),
		zap.String("from", string(previous)),
		zap.String("to", string(next)))
	return out, nil
}

func (u *AdditionalsUseCase) load(ctx context.Context, id string) (entities.AdditionalsRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.AdditionalsRecord{}, ErrInvalidAdditionalsID
	}
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.AdditionalsRecord{}, err
	}
	if rec.ID == "" {
		return entities.AdditionalsRecord{}, ErrAdditionalsNotFound
	}
	return rec, nil
}

func (u *AdditionalsUseCase) loadEstimate(ctx context.Context, estimateID string) (entities.Estimate, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return est, nil
}

// save persists rec; a non-empty action counts a newly raised line.
func (u *AdditionalsUseCase) save(ctx context.Context, rec entities.AdditionalsRecord, action entities.AdditionalAction) (AdditionalsView, error) {
	rec.UpdatedAt = u.now()
	updated, err := u.repo.Update(ctx, rec)
	if err != nil {
		return AdditionalsView{}, err
	}
	if updated.ID == "" {
		return AdditionalsView{}, ErrAdditionalsNotFound
	}
	if action != "" {
		u.metrics.AdditionalsLine(string(action))
	}
	return view(updated), nil
}

// checkReversalPairing keeps an approved reversal of an added line paired with
// an approved target: the reversal cannot be approved while its target is not,
// and the target cannot leave approved while such a reversal stands.
func checkReversalPairing(rec entities.AdditionalsRecord, line entities.AdditionalLineItem, next entities.AdditionalStatus) error {
	switch line.EffectiveAction() {
	case entities.AdditionalActionReversal:
		if next != entities.AdditionalStatusApproved {
			return nil
		}
		if target, _, ok := rec.FindLine(line.ReversesLineID); ok && target.Status != entities.AdditionalStatusApproved {
			return ErrInvalidReversalTarget
		}
	case entities.AdditionalActionAdd:
		if next == entities.AdditionalStatusApproved {
			return nil
		}
		for _, l := range rec.LineItems {
			if l.EffectiveAction() == entities.AdditionalActionReversal &&
				l.ReversesLineID == line.ID &&
				l.Status == entities.AdditionalStatusApproved {
				return ErrLineAlreadyTargeted
			}
		}
	}
	return nil
}

// isTargeted reports whether any removal or reversal line, whatever its
// status, already points at lineID.
func isTargeted(rec entities.AdditionalsRecord, lineID string) bool {
	for _, l := range rec.LineItems {
		switch l.EffectiveAction() {
		case entities.AdditionalActionRemoved:
			if l.OriginalEstimateLineID == lineID {
				return true
			}
		case entities.AdditionalActionReversal:
			if l.ReversesLineID == lineID {
				return true
			}
		}
	}
	return false
}

func view(rec entities.AdditionalsRecord) AdditionalsView {
	return AdditionalsView{Record: rec, Totals: costing.SummarizeAdditionals(rec)}
}
