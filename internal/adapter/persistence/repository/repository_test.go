package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEstimate() entities.Estimate {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return entities.Estimate{
		ID:                 "est-1",
		AssessmentID:       "asm-1",
		ClientID:           "client-1",
		VehicleRetailValue: 250000,
		LineItems: []entities.LineItem{
			{
				ID:            "l1",
				ProcessType:   entities.ProcessTypeNew,
				Description:   "headlamp",
				PartType:      entities.PartTypeOEM,
				PartNumber:    "HL-100",
				PartPriceNett: entities.Float(4200),
				LabourHours:   entities.Float(1.5),
				Betterment:    entities.Betterment{PartPercentage: entities.Float(10)},
				Total:         4305,
			},
			{ID: "l2", ProcessType: entities.ProcessTypeRepair, Description: "placeholder"},
		},
		LabourRate:    350,
		PaintRate:     420,
		VATPercentage: 15,
		Markups:       entities.Markups{OEMPercentage: 5},
		Subtotal:      4305,
		VATAmount:     645.75,
		Total:         4950.75,
		Status:        entities.EstimateStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestEstimateDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewEstimateDynamoRepository(ddb, "estimates")
	estimate := sampleEstimate()

	_, err := repo.Create(ctx, estimate)
	require.NoError(t, err)

	t.Run("create twice fails", func(t *testing.T) {
		_, err := repo.Create(ctx, estimate)
		assert.True(t, errors.Is(err, interfaces.ErrAlreadyExists))
	})

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "est-1")
		require.NoError(t, err)
		assert.Equal(t, estimate, got)
	})

	t.Run("by assessment", func(t *testing.T) {
		got, err := repo.GetByAssessmentID(ctx, "asm-1")
		require.NoError(t, err)
		assert.Equal(t, "est-1", got.ID)

		missing, err := repo.GetByAssessmentID(ctx, "asm-404")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})

	t.Run("missing id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("update existing", func(t *testing.T) {
		changed := estimate
		changed.Status = entities.EstimateStatusFinalized
		_, err := repo.Update(ctx, changed)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, "est-1")
		require.NoError(t, err)
		assert.Equal(t, entities.EstimateStatusFinalized, got.Status)
	})

	t.Run("update missing returns zero", func(t *testing.T) {
		ghost := estimate
		ghost.ID = "ghost"
		got, err := repo.Update(ctx, ghost)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("sdk errors are wrapped", func(t *testing.T) {
		broken := newFakeDynamo()
		broken.err = errors.New("throttled")
		_, err := NewEstimateDynamoRepository(broken, "estimates").GetByID(ctx, "est-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "estimates: get item est-1")
		assert.Contains(t, err.Error(), "throttled")
	})
}

func TestAdditionalsDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAdditionalsDynamoRepository(newFakeDynamo(), "additionals")
	record := entities.AdditionalsRecord{
		ID:         "add-1",
		EstimateID: "est-1",
		LineItems: []entities.AdditionalLineItem{
			{
				LineItem: entities.LineItem{ID: "a1", ProcessType: entities.ProcessTypeAlign, LabourHours: entities.Float(1), Total: 350},
				Action:   entities.AdditionalActionAdd,
				Status:   entities.AdditionalStatusPending,
			},
			{
				LineItem:               entities.LineItem{ID: "a2", ProcessType: entities.ProcessTypeNew, PartPriceNett: entities.Float(-100), Total: -100},
				Action:                 entities.AdditionalActionRemoved,
				Status:                 entities.AdditionalStatusDeclined,
				OriginalEstimateLineID: "l1",
				DeclineReason:          "part still required",
			},
		},
		LabourRate:    350,
		PaintRate:     420,
		VATPercentage: 15,
		CreatedAt:     time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC),
	}

	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	got, err := repo.GetByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	record.LineItems[0].Status = entities.AdditionalStatusApproved
	_, err = repo.Update(ctx, record)
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, "add-1")
	require.NoError(t, err)
	assert.Equal(t, entities.AdditionalStatusApproved, got.LineItems[0].Status)
}

func TestFRCDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFRCDynamoRepository(newFakeDynamo(), "frcs")
	completed := time.Date(2026, 3, 5, 16, 30, 0, 0, time.UTC)
	frc := entities.FRC{
		ID:            "frc-1",
		EstimateID:    "est-1",
		AdditionalsID: "add-1",
		LineItems: []entities.FRCLineItem{
			{
				ID:                "f1",
				Source:            entities.FRCLineSourceEstimate,
				SourceLineID:      "l1",
				ProcessType:       entities.ProcessTypeAlign,
				QuotedLabourHours: entities.Float(1),
				QuotedLabourRate:  350,
				Quoted:            entities.FRCAmounts{LabourCost: 350},
				QuotedTotal:       350,
				Actual:            &entities.FRCAmounts{LabourCost: 400},
				ActualTotal:       entities.Float(400),
				Decision:          entities.FRCDecisionAdjust,
				AdjustReason:      "extra hour",
			},
			{
				ID:          "f2",
				Source:      entities.FRCLineSourceAdditionals,
				ProcessType: entities.ProcessTypeOutwork,
				Action:      entities.AdditionalActionAdd,
				QuotedTotal: 90,
				Decision:    entities.FRCDecisionPending,
			},
		},
		VATPercentage: 15,
		Markups:       entities.Markups{OEMPercentage: 10, OutworkPercentage: 5},
		Status:        entities.FRCStatusCompleted,
		CreatedAt:     time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		UpdatedAt:     completed,
		CompletedAt:   &completed,
	}

	_, err := repo.Create(ctx, frc)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "frc-1")
	require.NoError(t, err)
	assert.Equal(t, frc, got)

	byEstimate, err := repo.GetByEstimateID(ctx, "est-1")
	require.NoError(t, err)
	assert.Equal(t, "frc-1", byEstimate.ID)
}

func TestFRCDecisionLogDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 2
	repo := NewFRCDecisionLogDynamoRepository(ddb, "frc_decisions")
	base := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"d3", "d1", "d2"} {
		offset := map[string]int{"d1": 1, "d2": 2, "d3": 3}[id]
		_, err := repo.Append(ctx, entities.FRCDecisionLogEntry{
			ID:               id,
			FRCID:            "frc-1",
			LineID:           "f1",
			PreviousDecision: entities.FRCDecisionPending,
			Decision:         entities.FRCDecisionApproved,
			CreatedAt:        base.Add(time.Duration(offset) * time.Minute),
		})
		require.NoError(t, err, "entry %d", i)
	}
	_, err := repo.Append(ctx, entities.FRCDecisionLogEntry{ID: "other", FRCID: "frc-2", CreatedAt: base})
	require.NoError(t, err)

	entries, err := repo.ListByFRCID(ctx, "frc-1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "d1", entries[0].ID)
	assert.Equal(t, "d2", entries[1].ID)
	assert.Equal(t, "d3", entries[2].ID)

	_, err = repo.Append(ctx, entities.FRCDecisionLogEntry{ID: "d1", FRCID: "frc-1"})
	assert.ErrorIs(t, err, interfaces.ErrAlreadyExists)
}

func TestWriteOffDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.keys["write_offs"] = "client_id"
	repo := NewWriteOffDynamoRepository(ddb, "write_offs")

	missing, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, missing.ClientID)

	p := entities.WriteOffPercentages{ClientID: "client-1", Borderline: 60, Total: 75, Salvage: 10, UpdatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, err = repo.Put(ctx, p)
	require.NoError(t, err)

	p.Borderline = 65
	_, err = repo.Put(ctx, p)
	require.NoError(t, err)

	got, err := repo.Get(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestSettlementDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettlementDynamoRepository(newFakeDynamo(), "settlements")
	s := entities.Settlement{
		ID:                 "set-1",
		FRCID:              "frc-1",
		Amount:             4950.75,
		Date:               time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC),
		Status:             entities.SettlementStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":"123","status":"approved"}`),
		ProviderPayload:    map[string]interface{}{"id": "123", "status": "approved"},
	}

	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "set-1")
	require.NoError(t, err)
	assert.Equal(t, s.Amount, got.Amount)
	assert.Equal(t, s.Status, got.Status)
	assert.JSONEq(t, string(s.ProviderPayloadRaw), string(got.ProviderPayloadRaw))
	assert.Equal(t, "approved", got.ProviderPayload["status"])

	list, err := repo.ListByFRCID(ctx, "frc-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
