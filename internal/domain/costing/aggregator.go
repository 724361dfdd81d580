package costing

import "claims_xpto/internal/domain/entities"

// CalculateSubtotal sums the stored totals of items.
func CalculateSubtotal(items []entities.LineItem) float64 {
	totals := make([]float64, 0, len(items))
	for _, item := range items {
		totals = append(totals, item.Total)
	}
	return sum2(totals...)
}

// CalculateVAT returns subtotal * vatPercentage / 100.
func CalculateVAT(subtotal, vatPercentage float64) float64 {
	return percentOf(subtotal, vatPercentage)
}

// CalculateTotal returns subtotal + vat.
func CalculateTotal(subtotal, vat float64) float64 {
	return sum2(subtotal, vat)
}

// MarkupTotals is the markup added on top of nett part and outwork prices.
type MarkupTotals struct {
	OEM        float64 `json:"oem"`
	Alternate  float64 `json:"alternate"`
	SecondHand float64 `json:"second_hand"`
	Outwork    float64 `json:"outwork"`
	Total      float64 `json:"total"`
}

// CalculateMarkups applies the estimate markups to new-part lines (by part
// type) and outwork lines. Lines of other process types carry no markup.
func CalculateMarkups(items []entities.LineItem, markups entities.Markups) MarkupTotals {
	var b markupBuckets
	for _, item := range items {
		b.add(item.ProcessType, item.PartType, Round2(deref(item.PartPriceNett)), Round2(deref(item.OutworkChargeNett)), markups)
	}
	return b.totals()
}

type markupBuckets struct {
	oem, alt, second, outwork []float64
}

func (b *markupBuckets) add(pt entities.ProcessType, partType entities.PartType, partPrice, outworkCharge float64, markups entities.Markups) {
	switch pt {
	case entities.ProcessTypeNew:
		switch partType {
		case entities.PartTypeOEM:
			b.oem = append(b.oem, percentOf(partPrice, markups.OEMPercentage))
		case entities.PartTypeAlternate:
			b.alt = append(b.alt, percentOf(partPrice, markups.AlternatePercentage))
		case entities.PartTypeSecondHand:
			b.second = append(b.second, percentOf(partPrice, markups.SecondHandPercentage))
		}
	case entities.ProcessTypeOutwork:
		b.outwork = append(b.outwork, percentOf(outworkCharge, markups.OutworkPercentage))
	}
}

func (b markupBuckets) totals() MarkupTotals {
	m := MarkupTotals{
		OEM:        sum2(b.oem...),
		Alternate:  sum2(b.alt...),
		SecondHand: sum2(b.second...),
		Outwork:    sum2(b.outwork...),
	}
	m.Total = sum2(m.OEM, m.Alternate, m.SecondHand, m.Outwork)
	return m
}

// EstimateTotals is the aggregate view of an estimate.
type EstimateTotals struct {
	LinesSubtotal float64      `json:"lines_subtotal"`
	Markups       MarkupTotals `json:"markups"`
	Subtotal      float64      `json:"subtotal"`
	VATAmount     float64      `json:"vat_amount"`
	Total         float64      `json:"total"`
}

// SummarizeEstimate aggregates the estimate's current line totals. With zero
// markups Subtotal equals CalculateSubtotal of the lines.
func SummarizeEstimate(e entities.Estimate) EstimateTotals {
	t := EstimateTotals{
		LinesSubtotal: CalculateSubtotal(e.LineItems),
		Markups:       CalculateMarkups(e.LineItems, e.Markups),
	}
	t.Subtotal = sum2(t.LinesSubtotal, t.Markups.Total)
	t.VATAmount = CalculateVAT(t.Subtotal, e.VATPercentage)
	t.Total = CalculateTotal(t.Subtotal, t.VATAmount)
	return t
}

// PriceEstimate refreshes every line total (keeping stored component amounts)
// and the estimate aggregates.
func (c *Calculator) PriceEstimate(e entities.Estimate) (entities.Estimate, error) {
	lines := make([]entities.LineItem, 0, len(e.LineItems))
	for _, item := range e.LineItems {
		priced := item.Clone()
		total, err := c.CalculateLineItemTotal(priced, e.LabourRate, e.PaintRate)
		if err != nil {
			return entities.Estimate{}, err
		}
		priced.Total = total
		lines = append(lines, priced)
	}
	e.LineItems = lines
	return applyTotals(e), nil
}

// RepriceEstimate re-derives every line under the estimate's current rates
// (see RecalculateAllLineItems) and refreshes the aggregates.
func (c *Calculator) RepriceEstimate(e entities.Estimate) (entities.Estimate, error) {
	lines, err := c.RecalculateAllLineItems(e.LineItems, e.LabourRate, e.PaintRate)
	if err != nil {
		return entities.Estimate{}, err
	}
	e.LineItems = lines
	return applyTotals(e), nil
}

func applyTotals(e entities.Estimate) entities.Estimate {
	totals := SummarizeEstimate(e)
	e.Subtotal = totals.Subtotal
	e.VATAmount = totals.VATAmount
	e.Total = totals.Total
	return e
}

// AdditionalsTotals splits an additionals record by approval status.
type AdditionalsTotals struct {
	ApprovedSubtotal float64 `json:"approved_subtotal"`
	PendingSubtotal  float64 `json:"pending_subtotal"`
	DeclinedSubtotal float64 `json:"declined_subtotal"`
	VATAmount        float64 `json:"vat_amount"`
	ApprovedTotal    float64 `json:"approved_total"`
}

// SummarizeAdditionals totals the record's lines per status. Removal and
// reversal lines carry negative totals and net off what they target.
func SummarizeAdditionals(a entities.AdditionalsRecord) AdditionalsTotals {
	var approved, pending, declined []float64
	for _, l := range a.LineItems {
		switch l.Status {
		case entities.AdditionalStatusApproved:
			approved = append(approved, l.Total)
		case entities.AdditionalStatusDeclined:
			declined = append(declined, l.Total)
		default:
			pending = append(pending, l.Total)
		}
	}

	t := AdditionalsTotals{
		ApprovedSubtotal: sum2(approved...),
		PendingSubtotal:  sum2(pending...),
		DeclinedSubtotal: sum2(declined...),
	}
	t.VATAmount = CalculateVAT(t.ApprovedSubtotal, a.VATPercentage)
	t.ApprovedTotal = CalculateTotal(t.ApprovedSubtotal, t.VATAmount)
	return t
}
