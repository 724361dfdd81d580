package costing

import (
	"testing"

	"claims_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composeFixture() entities.Estimate {
	return entities.Estimate{
		ID:            "est-1",
		LabourRate:    350,
		PaintRate:     420,
		VATPercentage: 15,
		LineItems: []entities.LineItem{
			{
				ID:            "e1",
				ProcessType:   entities.ProcessTypeNew,
				Description:   "front bumper",
				PartType:      entities.PartTypeOEM,
				PartPriceNett: entities.Float(1000),
				StripAssemble: entities.Float(200),
				LabourCost:    entities.Float(300),
				PaintCost:     entities.Float(150),
				Total:         1650,
			},
			{
				ID:          "e2",
				ProcessType: entities.ProcessTypeRepair,
				Description: "bonnet",
				LabourHours: entities.Float(1),
				Total:       350,
			},
		},
	}
}

func sourceIDs(lines []entities.FRCLineItem) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.SourceLineID)
	}
	return ids
}

func TestComposeFinalEstimateLines_NoAdditionals(t *testing.T) {
	calc := newTestCalculator()

	lines, err := calc.ComposeFinalEstimateLines(composeFixture(), nil)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	first := lines[0]
	assert.Equal(t, entities.FRCLineSourceEstimate, first.Source)
	assert.Equal(t, "e1", first.SourceLineID)
	assert.Empty(t, first.ID)
	assert.Equal(t, entities.FRCDecisionPending, first.Decision)
	assert.Equal(t, 1650.0, first.QuotedTotal)
	assert.Equal(t, 1000.0, first.Quoted.PartPrice)
	assert.Equal(t, 350.0, first.QuotedLabourRate)
	assert.Equal(t, 420.0, first.QuotedPaintRate)
	assert.Nil(t, first.Actual)
	assert.Nil(t, first.ActualTotal)

	assert.Equal(t, 350.0, lines[1].Quoted.LabourCost)
	assert.Equal(t, 1.0, *lines[1].QuotedLabourHours)
}

func TestComposeFinalEstimateLines_RemovalDropsBoth(t *testing.T) {
	calc := newTestCalculator()
	additionals := &entities.AdditionalsRecord{
		LabourRate: 350,
		PaintRate:  420,
		LineItems: []entities.AdditionalLineItem{
			{
				LineItem:               entities.LineItem{ID: "a1", ProcessType: entities.ProcessTypeNew, Total: -1650},
				Action:                 entities.AdditionalActionRemoved,
				Status:                 entities.AdditionalStatusApproved,
				OriginalEstimateLineID: "e1",
			},
		},
	}

	lines, err := calc.ComposeFinalEstimateLines(composeFixture(), additionals)
	require.NoError(t, err)
	assert.Equal(t, []string{"e2"}, sourceIDs(lines))
}

func TestComposeFinalEstimateLines_ReversalReplacesTarget(t *testing.T) {
	calc := newTestCalculator()
	additionals := &entities.AdditionalsRecord{
		LabourRate: 350,
		PaintRate:  420,
		LineItems: []entities.AdditionalLineItem{
			{
				LineItem: entities.LineItem{
					ID:            "a1",
					ProcessType:   entities.ProcessTypeNew,
					PartPriceNett: entities.Float(-1000),
					StripAssemble: entities.Float(-200),
					LabourCost:    entities.Float(-300),
					PaintCost:     entities.Float(-150),
					Total:         -1650,
				},
				Action:         entities.AdditionalActionReversal,
				Status:         entities.AdditionalStatusApproved,
				ReversesLineID: "e1",
			},
		},
	}

	lines, err := calc.ComposeFinalEstimateLines(composeFixture(), additionals)
	require.NoError(t, err)
	require.Equal(t, []string{"e2", "a1"}, sourceIDs(lines))

	reversal := lines[1]
	assert.Equal(t, entities.FRCLineSourceAdditionals, reversal.Source)
	assert.Equal(t, entities.AdditionalActionReversal, reversal.Action)
	assert.Equal(t, -1650.0, reversal.QuotedTotal)
}

func TestComposeFinalEstimateLines_AdditionalsFiltering(t *testing.T) {
	calc := newTestCalculator()
	additionals := &entities.AdditionalsRecord{
		LabourRate: 500,
		PaintRate:  600,
		LineItems: []entities.AdditionalLineItem{
			{
				LineItem: entities.LineItem{ID: "a1", ProcessType: entities.ProcessTypeAlign, LabourHours: entities.Float(1), Total: 500},
				Status:   entities.AdditionalStatusApproved,
			},
			{
				LineItem: entities.LineItem{ID: "a2", ProcessType: entities.ProcessTypeAlign, LabourHours: entities.Float(2), Total: 1000},
				Status:   entities.AdditionalStatusPending,
			},
			{
				LineItem: entities.LineItem{ID: "a3", ProcessType: entities.ProcessTypeOutwork, OutworkChargeNett: entities.Float(90), Total: 90},
				Status:   entities.AdditionalStatusDeclined,
			},
			{
				LineItem: entities.LineItem{ID: "a4", ProcessType: entities.ProcessTypePaint, PaintPanels: entities.Float(1), Total: 600},
				Status:   entities.AdditionalStatusApproved,
			},
			{
				LineItem:       entities.LineItem{ID: "a5", ProcessType: entities.ProcessTypePaint, PaintCost: entities.Float(-600), Total: -600},
				Action:         entities.AdditionalActionReversal,
				Status:         entities.AdditionalStatusPending,
				ReversesLineID: "a4",
			},
		},
	}

	lines, err := calc.ComposeFinalEstimateLines(composeFixture(), additionals)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2", "a1", "a4"}, sourceIDs(lines))

	added := lines[2]
	assert.Equal(t, entities.AdditionalActionAdd, added.Action)
	assert.Equal(t, 500.0, added.QuotedLabourRate)
	assert.Equal(t, 600.0, added.QuotedPaintRate)
	assert.Equal(t, 500.0, added.Quoted.LabourCost)
}

func TestComposeFinalEstimateLines_UnapprovedChangesKeepTargets(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name   string
		status entities.AdditionalStatus
	}{
		{name: "pending", status: entities.AdditionalStatusPending},
		{name: "declined", status: entities.AdditionalStatusDeclined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			additionals := &entities.AdditionalsRecord{
				LabourRate: 350,
				PaintRate:  420,
				LineItems: []entities.AdditionalLineItem{
					{
						LineItem:               entities.LineItem{ID: "a1", ProcessType: entities.ProcessTypeNew, PartPriceNett: entities.Float(-1650), Total: -1650},
						Action:                 entities.AdditionalActionRemoved,
						Status:                 tt.status,
						OriginalEstimateLineID: "e1",
					},
					{
						LineItem:       entities.LineItem{ID: "a2", ProcessType: entities.ProcessTypeRepair, LabourCost: entities.Float(-350), Total: -350},
						Action:         entities.AdditionalActionReversal,
						Status:         tt.status,
						ReversesLineID: "e2",
					},
				},
			}

			lines, err := calc.ComposeFinalEstimateLines(composeFixture(), additionals)
			require.NoError(t, err)
			assert.Equal(t, []string{"e1", "e2"}, sourceIDs(lines))
		})
	}
}

func TestComposeFinalEstimateLines_ApprovedReversalOfApprovedAdd(t *testing.T) {
	calc := newTestCalculator()
	additionals := &entities.AdditionalsRecord{
		LabourRate: 500,
		PaintRate:  600,
		LineItems: []entities.AdditionalLineItem{
			{
				LineItem: entities.LineItem{ID: "a1", ProcessType: entities.ProcessTypePaint, PaintPanels: entities.Float(1), Total: 600},
				Status:   entities.AdditionalStatusApproved,
			},
			{
				LineItem:       entities.LineItem{ID: "a2", ProcessType: entities.ProcessTypePaint, PaintCost: entities.Float(-600), Total: -600},
				Action:         entities.AdditionalActionReversal,
				Status:         entities.AdditionalStatusApproved,
				ReversesLineID: "a1",
			},
		},
	}

	lines, err := calc.ComposeFinalEstimateLines(composeFixture(), additionals)
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e2", "a2"}, sourceIDs(lines))
}

func TestComposeFinalEstimateLines_QuotedTotalFollowsComponents(t *testing.T) {
	calc := newTestCalculator()
	estimate := composeFixture()
	estimate.LineItems[1].Total = 999

	lines, err := calc.ComposeFinalEstimateLines(estimate, nil)
	require.NoError(t, err)
	assert.Equal(t, 350.0, lines[1].QuotedTotal)
	assert.Equal(t, 350.0, lines[1].Quoted.LabourCost)
}

func TestComposeFinalEstimateLines_SnapshotIsIndependent(t *testing.T) {
	calc := newTestCalculator()
	estimate := composeFixture()

	lines, err := calc.ComposeFinalEstimateLines(estimate, nil)
	require.NoError(t, err)

	*estimate.LineItems[1].LabourHours = 9
	estimate.LineItems[1].Total = 3150
	estimate.LineItems[0].Description = "changed"

	assert.Equal(t, 1.0, *lines[1].QuotedLabourHours)
	assert.Equal(t, 350.0, lines[1].QuotedTotal)
	assert.Equal(t, "front bumper", lines[0].Description)
}

func TestComposeFinalEstimateLines_UnknownProcessType(t *testing.T) {
	calc := newTestCalculator()
	estimate := composeFixture()
	estimate.LineItems = append(estimate.LineItems, entities.LineItem{ID: "e3", ProcessType: "X"})

	_, err := calc.ComposeFinalEstimateLines(estimate, nil)
	assert.ErrorIs(t, err, ErrUnknownProcessType)
}
