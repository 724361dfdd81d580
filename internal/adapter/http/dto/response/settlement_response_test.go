package response

import (
	"testing"
	"time"

	"claims_xpto/internal/domain/entities"
)

func TestFromSettlement(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Settlement{
		ID:                 "pay-1",
		FRCID:              "frc-1",
		Amount:             1265,
		Date:               now,
		Status:             entities.SettlementStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":123}`),
		ProviderPayload:    map[string]interface{}{"id": float64(123)},
	}

	res := FromSettlement(s)
	if res.ID != "pay-1" || res.FRCID != "frc-1" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Amount != 1265 || !res.Date.Equal(now) {
		t.Fatalf("unexpected amount/date: %+v", res)
	}
	if res.ProviderPayloadRaw != `{"id":123}` || res.ProviderPayload["id"] != float64(123) {
		t.Fatalf("unexpected provider payload: %+v", res)
	}
}

func TestFromSettlements(t *testing.T) {
	out := FromSettlements([]entities.Settlement{{ID: "a"}, {ID: "b"}})
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("unexpected list: %+v", out)
	}
}

func TestFromWriteOff(t *testing.T) {
	res := FromWriteOff(entities.WriteOffPercentages{ClientID: "cli-1", Borderline: 50, Total: 70, Salvage: 15})
	if res.ClientID != "cli-1" || res.Borderline != 50 || res.Total != 70 || res.Salvage != 15 {
		t.Fatalf("unexpected write-off: %+v", res)
	}
}
