package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go -package=mock_interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payout provider (Mercado Pago).
//
// Settlements keep the provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
