package costing

import (
	"testing"

	"claims_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSubtotalVATTotal(t *testing.T) {
	items := []entities.LineItem{{Total: 10.1}, {Total: 20.2}, {Total: 30.3}}
	assert.Equal(t, 60.6, CalculateSubtotal(items))
	assert.Equal(t, 0.0, CalculateSubtotal(nil))

	assert.Equal(t, 150.0, CalculateVAT(1000, 15))
	assert.Equal(t, 50.0, CalculateVAT(333.33, 15))
	assert.Equal(t, 0.0, CalculateVAT(1000, 0))

	assert.Equal(t, 1150.0, CalculateTotal(1000, 150))
}

func TestCalculateMarkups(t *testing.T) {
	items := []entities.LineItem{
		{ProcessType: entities.ProcessTypeNew, PartType: entities.PartTypeOEM, PartPriceNett: entities.Float(1000)},
		{ProcessType: entities.ProcessTypeNew, PartType: entities.PartTypeAlternate, PartPriceNett: entities.Float(500)},
		{ProcessType: entities.ProcessTypeNew, PartType: entities.PartTypeSecondHand, PartPriceNett: entities.Float(300)},
		{ProcessType: entities.ProcessTypeNew, PartPriceNett: entities.Float(999)},
		{ProcessType: entities.ProcessTypeOutwork, OutworkChargeNett: entities.Float(200)},
		{ProcessType: entities.ProcessTypeRepair, LabourCost: entities.Float(800)},
	}
	markups := entities.Markups{
		OEMPercentage:        10,
		AlternatePercentage:  5,
		SecondHandPercentage: 2.5,
		OutworkPercentage:    20,
	}

	m := CalculateMarkups(items, markups)
	assert.Equal(t, 100.0, m.OEM)
	assert.Equal(t, 25.0, m.Alternate)
	assert.Equal(t, 7.5, m.SecondHand)
	assert.Equal(t, 40.0, m.Outwork)
	assert.Equal(t, 172.5, m.Total)
}

func TestPriceEstimate(t *testing.T) {
	calc := newTestCalculator()
	estimate := entities.Estimate{
		LabourRate:    350,
		PaintRate:     420,
		VATPercentage: 15,
		LineItems: []entities.LineItem{
			{
				ID:            "e1",
				ProcessType:   entities.ProcessTypeNew,
				PartPriceNett: entities.Float(1000),
				StripAssemble: entities.Float(200),
				LabourCost:    entities.Float(300),
				PaintCost:     entities.Float(150),
			},
			{
				ID:          "e2",
				ProcessType: entities.ProcessTypeAlign,
				LabourHours: entities.Float(1),
			},
		},
	}

	priced, err := calc.PriceEstimate(estimate)
	require.NoError(t, err)
	assert.Equal(t, 1650.0, priced.LineItems[0].Total)
	assert.Equal(t, 350.0, priced.LineItems[1].Total)
	assert.Equal(t, 2000.0, priced.Subtotal)
	assert.Equal(t, 300.0, priced.VATAmount)
	assert.Equal(t, 2300.0, priced.Total)

	assert.Zero(t, estimate.LineItems[0].Total, "input estimate lines must not change")

	t.Run("subtotal matches sum of line totals without markups", func(t *testing.T) {
		totals := SummarizeEstimate(priced)
		assert.Equal(t, CalculateSubtotal(priced.LineItems), totals.Subtotal)
	})

	t.Run("markups are added before vat", func(t *testing.T) {
		withMarkup := priced
		withMarkup.LineItems[0].PartType = entities.PartTypeOEM
		withMarkup.Markups = entities.Markups{OEMPercentage: 10}
		totals := SummarizeEstimate(withMarkup)
		assert.Equal(t, 2000.0, totals.LinesSubtotal)
		assert.Equal(t, 2100.0, totals.Subtotal)
		assert.Equal(t, 315.0, totals.VATAmount)
		assert.Equal(t, 2415.0, totals.Total)
	})

	t.Run("unknown process type fails", func(t *testing.T) {
		bad := estimate
		bad.LineItems = append([]entities.LineItem{}, estimate.LineItems...)
		bad.LineItems = append(bad.LineItems, entities.LineItem{ID: "e3", ProcessType: "X"})
		_, err := calc.PriceEstimate(bad)
		assert.ErrorIs(t, err, ErrUnknownProcessType)
	})
}

func TestRepriceEstimate_RateChange(t *testing.T) {
	calc := newTestCalculator()
	estimate := entities.Estimate{
		LabourRate: 400,
		PaintRate:  500,
		LineItems: []entities.LineItem{
			{
				ID:          "e1",
				ProcessType: entities.ProcessTypeAlign,
				LabourHours: entities.Float(2),
				LabourCost:  entities.Float(700),
				Total:       700,
			},
		},
	}

	repriced, err := calc.RepriceEstimate(estimate)
	require.NoError(t, err)
	assert.Equal(t, 800.0, *repriced.LineItems[0].LabourCost)
	assert.Equal(t, 800.0, repriced.Total)
}

func TestSummarizeAdditionals(t *testing.T) {
	record := entities.AdditionalsRecord{
		VATPercentage: 15,
		LineItems: []entities.AdditionalLineItem{
			{LineItem: entities.LineItem{ID: "a1", Total: 500}, Status: entities.AdditionalStatusApproved},
			{LineItem: entities.LineItem{ID: "a2", Total: -200}, Action: entities.AdditionalActionRemoved, Status: entities.AdditionalStatusApproved},
			{LineItem: entities.LineItem{ID: "a3", Total: 120}, Status: entities.AdditionalStatusPending},
			{LineItem: entities.LineItem{ID: "a4", Total: 80}, Status: entities.AdditionalStatusDeclined},
		},
	}

	totals := SummarizeAdditionals(record)
	assert.Equal(t, 300.0, totals.ApprovedSubtotal)
	assert.Equal(t, 120.0, totals.PendingSubtotal)
	assert.Equal(t, 80.0, totals.DeclinedSubtotal)
	assert.Equal(t, 45.0, totals.VATAmount)
	assert.Equal(t, 345.0, totals.ApprovedTotal)
}
