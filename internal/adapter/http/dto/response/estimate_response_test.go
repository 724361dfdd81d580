package response

import (
	"testing"
	"time"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimate{
		ID:            "est-1",
		AssessmentID:  "asm-1",
		ClientID:      "cli-1",
		LabourRate:    500,
		PaintRate:     400,
		VATPercentage: 15,
		Markups:       entities.Markups{OEMPercentage: 10},
		LineItems: []entities.LineItem{
			{
				ID:            "l-1",
				ProcessType:   entities.ProcessTypeNew,
				Description:   "Bumper",
				PartType:      entities.PartTypeOEM,
				PartPriceNett: entities.Float(1000),
				Total:         1000,
			},
		},
		Subtotal:  1100,
		VATAmount: 165,
		Total:     1265,
		Status:    entities.EstimateStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.EstimateID != "est-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.AssessmentID != "asm-1" || res.ClientID != "cli-1" || res.Status != "draft" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.LineItems) != 1 || res.LineItems[0].ProcessType != "N" || res.LineItems[0].PartType != "OEM" {
		t.Fatalf("unexpected line items: %+v", res.LineItems)
	}
	if res.Totals.LinesSubtotal != 1000 || res.Totals.Markups.OEM != 100 || res.Totals.Total != 1265 {
		t.Fatalf("unexpected totals: %+v", res.Totals)
	}
	if res.Total != 1265 {
		t.Fatalf("expected total 1265, got %v", res.Total)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromEstimate_EmptyLinesIsNotNil(t *testing.T) {
	res := FromEstimate(entities.Estimate{ID: "est-1"})
	if res.LineItems == nil || len(res.LineItems) != 0 {
		t.Fatalf("expected empty line items slice, got %#v", res.LineItems)
	}
}

func TestFromThreshold(t *testing.T) {
	v := usecase.ThresholdView{
		EstimateID:         "est-1",
		EstimateTotal:      9000,
		VehicleRetailValue: 20000,
		WriteOff:           costing.WriteOffValues{Borderline: 10000, Total: 14000, Salvage: 3000},
		Threshold:          costing.CalculateEstimateThreshold(9000, 10000),
	}

	res := FromThreshold(v)
	if res.Color != "red" || !res.ShowWarning {
		t.Fatalf("unexpected classification: %+v", res)
	}
	if res.Percentage != 90 || res.Message == "" {
		t.Fatalf("unexpected percentage/message: %+v", res)
	}
	if res.WriteOff.Borderline != 10000 || res.EstimateID != "est-1" {
		t.Fatalf("unexpected write-off values: %+v", res)
	}
}

func TestFromProcessTypes(t *testing.T) {
	out := FromProcessTypes(costing.DefaultRegistry().All())
	if len(out) != 6 {
		t.Fatalf("expected 6 process types, got %d", len(out))
	}
	if out[0].Code != "N" || out[0].Category != "parts" {
		t.Fatalf("unexpected first process type: %+v", out[0])
	}
	if len(out[0].Components) != 4 || out[0].Components[0] != "part_price" {
		t.Fatalf("unexpected components: %+v", out[0].Components)
	}
}
