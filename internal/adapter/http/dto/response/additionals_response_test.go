package response

import (
	"testing"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"
)

func TestFromAdditionals(t *testing.T) {
	rec := entities.AdditionalsRecord{
		ID:            "add-1",
		EstimateID:    "est-1",
		LabourRate:    500,
		PaintRate:     400,
		VATPercentage: 15,
		LineItems: []entities.AdditionalLineItem{
			{
				LineItem: entities.LineItem{ID: "a-1", ProcessType: entities.ProcessTypeRepair, Description: "Door", Total: 1000},
				Status:   entities.AdditionalStatusPending,
			},
			{
				LineItem:               entities.LineItem{ID: "a-2", ProcessType: entities.ProcessTypeRepair, Description: "Fender", Total: -500},
				Action:                 entities.AdditionalActionRemoved,
				Status:                 entities.AdditionalStatusDeclined,
				OriginalEstimateLineID: "l-1",
				DeclineReason:          "not damaged",
			},
		},
	}
	totals := costing.AdditionalsTotals{PendingSubtotal: 1000, DeclinedSubtotal: -500}

	res := FromAdditionals(usecase.AdditionalsView{Record: rec, Totals: totals})
	if res.ID != "add-1" || res.EstimateID != "est-1" || res.VATPercentage != 15 {
		t.Fatalf("unexpected record fields: %+v", res)
	}
	if len(res.LineItems) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(res.LineItems))
	}
	if res.LineItems[0].Action != "add" || res.LineItems[0].Status != "pending" {
		t.Fatalf("expected empty action to render as add: %+v", res.LineItems[0])
	}
	second := res.LineItems[1]
	if second.Action != "removed" || second.OriginalEstimateLineID != "l-1" || second.DeclineReason != "not damaged" {
		t.Fatalf("unexpected removal line: %+v", second)
	}
	if second.ID != "a-2" || second.Total != -500 {
		t.Fatalf("embedded line fields not mapped: %+v", second)
	}
	if res.Totals.PendingSubtotal != 1000 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
}
