package request

import (
	"testing"

	"claims_xpto/internal/domain/entities"
)

func TestDecisionRequest_Resolve(t *testing.T) {
	r := DecisionRequest{Decision: " Adjust ", Actual: &AmountsRequest{LabourCost: 180}}
	if got := r.ResolveDecision(); got != entities.FRCDecisionAdjust {
		t.Fatalf("expected adjust, got %q", got)
	}
	if a := r.ResolveActual(); a == nil || a.LabourCost != 180 {
		t.Fatalf("unexpected actual: %+v", a)
	}
	if (DecisionRequest{}).ResolveActual() != nil {
		t.Fatalf("expected nil actual")
	}
}

func TestDecisionRequest_ResolveActor(t *testing.T) {
	if got := (DecisionRequest{Actor: " ana "}).ResolveActor("header"); got != "ana" {
		t.Fatalf("expected body actor, got %q", got)
	}
	if got := (DecisionRequest{}).ResolveActor(" header "); got != "header" {
		t.Fatalf("expected header actor, got %q", got)
	}
}
