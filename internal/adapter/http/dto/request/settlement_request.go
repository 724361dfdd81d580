package request

import "encoding/json"

// SettlementRequest wraps the Mercado Pago payment payload. The body may also
// be the bare payload; the handler accepts both.
//
// transaction_amount is always replaced by the FRC actual total.
type SettlementRequest struct {
	PaymentPayload json.RawMessage `json:"payment_payload"`
}
