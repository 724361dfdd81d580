package costing

import "claims_xpto/internal/domain/entities"

// LineBreakdown is the priced view of one line item. Component amounts are
// the contributions that count for the line's process type; inactive
// components are zero.
type LineBreakdown struct {
	PartPrice     float64
	StripAssemble float64
	LabourCost    float64
	PaintCost     float64
	OutworkCharge float64

	Gross      float64
	Betterment float64
	Total      float64
}

// Calculator prices line items using an injected process-type registry.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	registry Registry
}

func NewCalculator(registry Registry) *Calculator {
	return &Calculator{registry: registry}
}

// Registry returns the process-type table the calculator was built with.
func (c *Calculator) Registry() Registry {
	return c.registry
}

// CalculateLineItemTotal returns the net total of item at the given rates.
func (c *Calculator) CalculateLineItemTotal(item entities.LineItem, labourRate, paintRate float64) (float64, error) {
	b, err := c.Breakdown(item, labourRate, paintRate)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Breakdown prices every component of item.
//
// Rounding happens at each boundary: every derived component, every betterment
// deduction, their sum, the gross and the net total.
func (c *Calculator) Breakdown(item entities.LineItem, labourRate, paintRate float64) (LineBreakdown, error) {
	cfg, err := c.registry.Lookup(item.ProcessType)
	if err != nil {
		return LineBreakdown{}, &UnknownProcessTypeError{Code: item.ProcessType, LineID: item.ID}
	}

	var b LineBreakdown
	if cfg.PartPrice {
		b.PartPrice = Round2(deref(item.PartPriceNett))
	}
	if cfg.StripAssemble {
		b.StripAssemble = resolveCost(item.StripAssemble, item.StripAssembleHours, labourRate)
	}
	if cfg.Labour {
		b.LabourCost = resolveCost(item.LabourCost, item.LabourHours, labourRate)
	}
	if cfg.Paint {
		b.PaintCost = resolveCost(item.PaintCost, item.PaintPanels, paintRate)
	}
	if cfg.Outwork {
		b.OutworkCharge = Round2(deref(item.OutworkChargeNett))
	}

	b.Gross = sum2(b.PartPrice, b.StripAssemble, b.LabourCost, b.PaintCost, b.OutworkCharge)
	b.Betterment = bettermentDeduction(b, item.Betterment)
	b.Total = sub2(b.Gross, b.Betterment)
	return b, nil
}

// RecalculateLineItem re-derives the stored strip & assemble, labour and paint
// costs from their quantities at the given rates and refreshes the total.
// Components without a quantity keep their stored amount. item is not
// modified.
func (c *Calculator) RecalculateLineItem(item entities.LineItem, labourRate, paintRate float64) (entities.LineItem, error) {
	cfg, err := c.registry.Lookup(item.ProcessType)
	if err != nil {
		return entities.LineItem{}, &UnknownProcessTypeError{Code: item.ProcessType, LineID: item.ID}
	}

	out := item.Clone()
	if cfg.StripAssemble && out.StripAssembleHours != nil {
		out.StripAssemble = entities.Float(mul2(*out.StripAssembleHours, labourRate))
	}
	if cfg.Labour && out.LabourHours != nil {
		out.LabourCost = entities.Float(mul2(*out.LabourHours, labourRate))
	}
	if cfg.Paint && out.PaintPanels != nil {
		out.PaintCost = entities.Float(mul2(*out.PaintPanels, paintRate))
	}

	total, err := c.CalculateLineItemTotal(out, labourRate, paintRate)
	if err != nil {
		return entities.LineItem{}, err
	}
	out.Total = total
	return out, nil
}

// RecalculateAllLineItems applies RecalculateLineItem to every item and
// returns the new slice. The input is left untouched, and feeding the output
// back in with the same rates yields an identical result.
func (c *Calculator) RecalculateAllLineItems(items []entities.LineItem, labourRate, paintRate float64) ([]entities.LineItem, error) {
	out := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		recalculated, err := c.RecalculateLineItem(item, labourRate, paintRate)
		if err != nil {
			return nil, err
		}
		out = append(out, recalculated)
	}
	return out, nil
}

func resolveCost(stored, quantity *float64, rate float64) float64 {
	if stored != nil {
		return Round2(*stored)
	}
	if quantity != nil {
		return mul2(*quantity, rate)
	}
	return 0
}

func bettermentDeduction(b LineBreakdown, bt entities.Betterment) float64 {
	deductions := []float64{
		deduction(b.PartPrice, bt.PartPercentage),
		deduction(b.StripAssemble, bt.StripAssemblePercentage),
		deduction(b.LabourCost, bt.LabourPercentage),
		deduction(b.PaintCost, bt.PaintPercentage),
		deduction(b.OutworkCharge, bt.OutworkPercentage),
	}
	return sum2(deductions...)
}

func deduction(base float64, pct *float64) float64 {
	if pct == nil || *pct == 0 || base == 0 {
		return 0
	}
	return percentOf(base, *pct)
}

// NegateLineItem returns a mirror of item priced at the given rates: every
// component is stored as its negated amount and quantities are cleared, so the
// mirror's total is exactly minus item's total. Removal and reversal lines are
// built this way.
func (c *Calculator) NegateLineItem(item entities.LineItem, labourRate, paintRate float64) (entities.LineItem, error) {
	b, err := c.Breakdown(item, labourRate, paintRate)
	if err != nil {
		return entities.LineItem{}, err
	}

	out := item.Clone()
	out.StripAssembleHours = nil
	out.LabourHours = nil
	out.PaintPanels = nil
	out.PartPriceNett = entities.Float(negate(b.PartPrice))
	out.StripAssemble = entities.Float(negate(b.StripAssemble))
	out.LabourCost = entities.Float(negate(b.LabourCost))
	out.PaintCost = entities.Float(negate(b.PaintCost))
	out.OutworkChargeNett = entities.Float(negate(b.OutworkCharge))
	out.Total = negate(b.Total)
	return out, nil
}

func negate(v float64) float64 {
	if v == 0 {
		return 0
	}
	return -v
}
