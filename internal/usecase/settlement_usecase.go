package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
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

// sandboxPayerEmail is the Mercado Pago test user used when a sandbox
// payload carries no payer.
const sandboxPayerEmail = "test_user_br@testuser.com"

// ISettlementUseCase pays out the actual total of a completed FRC.
type ISettlementUseCase interface {
	Settle(ctx context.Context, frcID string, payload json.RawMessage) (entities.Settlement, error)
	GetByID(ctx context.Context, id string) (entities.Settlement, error)
	ListByFRCID(ctx context.Context, frcID string) ([]entities.Settlement, error)
	GetLatest(ctx context.Context, frcID string) (entities.Settlement, error)
}

type SettlementUseCase struct {
	repo     interfaces.ISettlementRepository
	frcRepo  interfaces.IFRCRepository
	gateway  interfaces.IPaymentGateway
	calc     *costing.Calculator
	payments config.PaymentsConfig
	metrics  *metrics.Metrics

	now   func() time.Time
	newID func() string
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	repo interfaces.ISettlementRepository,
	frcRepo interfaces.IFRCRepository,
	gateway interfaces.IPaymentGateway,
	calc *costing.Calculator,
	payments config.PaymentsConfig,
	m *metrics.Metrics,
) *SettlementUseCase {
	return &SettlementUseCase{
		repo:     repo,
		frcRepo:  frcRepo,
		gateway:  gateway,
		calc:     calc,
		payments: payments,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Settle sends a payout for frcID through the payment gateway and stores the
// outcome. The amount is always the FRC's actual grand total; any
// transaction_amount in payload is overwritten.
func (u *SettlementUseCase) Settle(ctx context.Context, frcID string, payload json.RawMessage) (entities.Settlement, error) {
	log := zap.L().With(zap.String("frc_id", frcID))
	log.Info("[settlement][usecase] settle start", zap.Int("payload_len", len(payload)))

	frcID = strings.TrimSpace(frcID)
	if frcID == "" {
		return entities.Settlement{}, ErrInvalidFRCID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Warn("[settlement][usecase] invalid payload (not-json)")
		return entities.Settlement{}, ErrInvalidSettlementPayload
	}
	if u.gateway == nil {
		log.Error("[settlement][usecase] gateway not configured")
		return entities.Settlement{}, ErrPaymentGatewayNotConfigured
	}

	f, err := u.frcRepo.GetByID(ctx, frcID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if f.ID == "" {
		return entities.Settlement{}, ErrFRCNotFound
	}
	if f.Status != entities.FRCStatusCompleted {
		log.Warn("[settlement][usecase] frc not completed", zap.String("status", string(f.Status)))
		return entities.Settlement{}, ErrFRCNotCompleted
	}

	previous, err := u.repo.ListByFRCID(ctx, f.ID)
	if err != nil {
		return entities.Settlement{}, err
	}
	for _, s := range previous {
		if s.Status == entities.SettlementStatusApproved {
			return entities.Settlement{}, ErrFRCAlreadySettled
		}
	}

	summary, err := u.calc.SummarizeFRC(f)
	if err != nil {
		recordUnknownProcessType(u.metrics, "settle", err)
		return entities.Settlement{}, err
	}
	amount := summary.ActualTotal
	if amount <= 0 {
		return entities.Settlement{}, ErrInvalidSettlementAmount
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		log.Warn("[settlement][usecase] payload is not a json object")
		return entities.Settlement{}, ErrInvalidSettlementPayload
	}
	if !u.payments.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("[settlement][usecase] missing payment_method_id")
			return entities.Settlement{}, ErrInvalidSettlementPayload
		}
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[settlement][usecase] missing/invalid payer")
			return entities.Settlement{}, ErrInvalidSettlementPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = f.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Final repair cost %s", f.ID)
	}
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Settlement{}, err
	}

	log.Info("[settlement][usecase] calling payment gateway", zap.Float64("amount", amount))
	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Error("[settlement][usecase] payment gateway failed", zap.Error(err))
		return entities.Settlement{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.Warn("[settlement][usecase] provider response unmarshal failed", zap.Error(err))
		}
	}

	id := strings.TrimSpace(providerID)
	if id == "" {
		id = u.newID()
	}
	s := entities.Settlement{
		ID:                 id,
		FRCID:              f.ID,
		Amount:             amount,
		Date:               u.now(),
		Status:             settlementStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Error("[settlement][usecase] settlement repository create failed", zap.String("settlement_id", s.ID), zap.Error(err))
		return entities.Settlement{}, err
	}

	u.metrics.Settlement(string(created.Status))
	log.Info("[settlement][usecase] settle success",
		zap.String("settlement_id", created.ID),
		zap.String("provider_status", providerStatus),
		zap.String("status", string(created.Status)))
	return created, nil
}

func (u *SettlementUseCase) GetByID(ctx context.Context, id string) (entities.Settlement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Settlement{}, err
	}
	if s.ID == "" {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	return s, nil
}

// ListByFRCID returns the settlements of an FRC, oldest first.
func (u *SettlementUseCase) ListByFRCID(ctx context.Context, frcID string) ([]entities.Settlement, error) {
	frcID = strings.TrimSpace(frcID)
	if frcID == "" {
		return nil, ErrInvalidFRCID
	}
	out, err := u.repo.ListByFRCID(ctx, frcID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (u *SettlementUseCase) GetLatest(ctx context.Context, frcID string) (entities.Settlement, error) {
	list, err := u.ListByFRCID(ctx, frcID)
	if err != nil {
		return entities.Settlement{}, err
	}
	if len(list) == 0 {
		return entities.Settlement{}, ErrSettlementNotFound
	}
	return list[len(list)-1], nil
}

// ensurePayerDefaults fills payer.type and, when neither payer.id nor
// payer.email is present, the configured payer email (or the sandbox test
// user for TEST- access tokens).
func (u *SettlementUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.payments.PayerEmail); email != "" {
		payer["email"] = email
	} else if strings.HasPrefix(strings.TrimSpace(u.payments.AccessToken), "TEST-") {
		payer["email"] = sandboxPayerEmail
	}
}

func settlementStatus(providerStatus string) entities.SettlementStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.SettlementStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.SettlementStatusDenied
	}
	return entities.SettlementStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
