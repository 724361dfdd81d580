package response

import (
	"time"

	"claims_xpto/internal/domain/entities"
)

type SettlementResponse struct {
	ID     string    `json:"id"`
	FRCID  string    `json:"frc_id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromSettlement(s entities.Settlement) SettlementResponse {
	return SettlementResponse{
		ID:                 s.ID,
		FRCID:              s.FRCID,
		Amount:             s.Amount,
		Date:               s.Date,
		Status:             string(s.Status),
		ProviderPayloadRaw: string(s.ProviderPayloadRaw),
		ProviderPayload:    s.ProviderPayload,
	}
}

func FromSettlements(list []entities.Settlement) []SettlementResponse {
	out := make([]SettlementResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSettlement(s))
	}
	return out
}
