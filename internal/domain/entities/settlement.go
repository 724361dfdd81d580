package entities

import (
	"encoding/json"
	"time"
)

// SettlementStatus represents the payout processing outcome.
type SettlementStatus string

const (
	SettlementStatusPending  SettlementStatus = "pending"
	SettlementStatusApproved SettlementStatus = "approved"
	SettlementStatusDenied   SettlementStatus = "denied"
)

// Settlement is the payout of a completed FRC.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (frc_id-index): frc_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for audit.
//   - ProviderPayload is the parsed representation.
type Settlement struct {
	ID     string           `json:"id"`
	FRCID  string           `json:"frc_id"`
	Amount float64          `json:"amount"`
	Date   time.Time        `json:"date"`
	Status SettlementStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
