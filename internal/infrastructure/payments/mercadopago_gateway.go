package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	appconfig "claims_xpto/internal/config"
	"claims_xpto/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway pays out settlements through the Mercado Pago payments
// API. In mock mode no request leaves the process and every payout is
// approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	log      *zap.Logger
	now      func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.PaymentsConfig, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Mock {
		log.Info("[settlement][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log, now: time.Now}, nil
	}

	if cfg.AccessToken == "" {
		log.Warn("[settlement][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	mpCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		return nil, eris.Wrap(err, "mercado pago sdk config")
	}
	log.Info("[settlement][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(mpCfg), log: log, now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(requestPayload)
	}
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	g.log.Info("[settlement][gateway] create start", zap.Int("payload_len", len(requestPayload)))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		return "", "", nil, eris.Wrap(err, "decode payment request")
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Error("[settlement][gateway] sdk create failed", zap.Error(err))
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, eris.Wrap(err, "encode payment response")
	}
	g.log.Info("[settlement][gateway] create success",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockPayment echoes the request back as an approved payment.
func (g *MercadoPagoGateway) mockPayment(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	now := g.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	stamp := now.Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = stamp
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = stamp
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, eris.Wrap(err, "encode mock response")
	}
	g.log.Info("[settlement][gateway] mock create success", zap.String("provider_payment_id", id))
	return id, "approved", b, nil
}
