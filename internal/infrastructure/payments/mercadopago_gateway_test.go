package payments

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	appconfig "claims_xpto/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{}, zap.NewNop())
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true}, nil)
		require.NoError(t, err)
		assert.True(t, g.mockMode)
	})
}

func TestMercadoPagoGateway_MockPayment(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.PaymentsConfig{Mock: true}, zap.NewNop())
	require.NoError(t, err)
	fixed := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":4950.75,"external_reference":"frc-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.NotEmpty(t, id)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "frc-1", body["external_reference"])
	assert.Equal(t, 4950.75, body["transaction_amount"])
	assert.Equal(t, "accredited", body["status_detail"])
	assert.Equal(t, fixed.Format(time.RFC3339Nano), body["date_created"])
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
