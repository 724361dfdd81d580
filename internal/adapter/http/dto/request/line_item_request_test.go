package request

import (
	"testing"

	"claims_xpto/internal/domain/entities"
)

func TestLineItemRequest_ToEntity(t *testing.T) {
	hours := 2.5
	pct := 10.0
	r := LineItemRequest{
		ProcessType: " n ",
		Description: " front bumper ",
		PartType:    "oem",
		LabourHours: &hours,
		Betterment:  BettermentRequest{PartPercentage: &pct},
	}

	got := r.ToEntity()
	if got.ProcessType != entities.ProcessTypeNew || got.PartType != entities.PartTypeOEM {
		t.Fatalf("unexpected codes: %+v", got)
	}
	if got.Description != "front bumper" {
		t.Fatalf("expected trimmed description, got %q", got.Description)
	}
	if got.LabourHours == nil || *got.LabourHours != 2.5 || got.Betterment.PartPercentage == nil || *got.Betterment.PartPercentage != 10 {
		t.Fatalf("unexpected amounts: %+v", got)
	}
	if got.ID != "" || got.Total != 0 {
		t.Fatalf("id and total are assigned by the service: %+v", got)
	}
}

func TestToLineItems(t *testing.T) {
	got := ToLineItems([]LineItemRequest{{ProcessType: "R", Description: "a"}, {ProcessType: "P", Description: "b"}})
	if len(got) != 2 || got[0].ProcessType != entities.ProcessTypeRepair || got[1].ProcessType != entities.ProcessTypePaint {
		t.Fatalf("unexpected items: %+v", got)
	}
	if empty := ToLineItems(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", empty)
	}
}

func TestUpdateRatesRequest_IsEmpty(t *testing.T) {
	if !(UpdateRatesRequest{}).IsEmpty() {
		t.Fatalf("expected empty request")
	}
	rate := 90.0
	if (UpdateRatesRequest{PaintRate: &rate}).IsEmpty() {
		t.Fatalf("expected non-empty request")
	}
	if (UpdateRatesRequest{Markups: &MarkupsRequest{}}).IsEmpty() {
		t.Fatalf("expected non-empty request")
	}
}

func TestMarkupsRequest_ToEntity(t *testing.T) {
	var nilReq *MarkupsRequest
	if nilReq.ToEntity() != nil {
		t.Fatalf("expected nil markups")
	}
	m := (&MarkupsRequest{OEMPercentage: 5, OutworkPercentage: 2}).ToEntity()
	if m.OEMPercentage != 5 || m.OutworkPercentage != 2 {
		t.Fatalf("unexpected markups: %+v", m)
	}
}
