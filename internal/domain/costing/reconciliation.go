package costing

import (
	"errors"
	"strings"

	"claims_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrFRCLinesPending = errors.New("frc has undecided lines")
	ErrFRCLineInvalid  = errors.New("frc line failed validation")
)

// BreakdownTotals buckets FRC line totals by process-type category.
type BreakdownTotals struct {
	PartsTotal   float64 `json:"parts_total"`
	LabourTotal  float64 `json:"labour_total"`
	PaintTotal   float64 `json:"paint_total"`
	OutworkTotal float64 `json:"outwork_total"`
	Subtotal     float64 `json:"subtotal"`
}

// CalculateBreakdownTotals sums quoted totals, or actual totals when
// useActual is set, into the category of each line's process type. A line
// without an actual total contributes 0 to the actual breakdown.
func (c *Calculator) CalculateBreakdownTotals(lines []entities.FRCLineItem, useActual bool) (BreakdownTotals, error) {
	buckets := map[Category][]float64{}
	for _, l := range lines {
		cfg, err := c.registry.Lookup(l.ProcessType)
		if err != nil {
			return BreakdownTotals{}, &UnknownProcessTypeError{Code: l.ProcessType, LineID: l.ID}
		}
		value := l.QuotedTotal
		if useActual {
			value = deref(l.ActualTotal)
		}
		buckets[cfg.Category] = append(buckets[cfg.Category], value)
	}

	t := BreakdownTotals{
		PartsTotal:   sum2(buckets[CategoryParts]...),
		LabourTotal:  sum2(buckets[CategoryLabour]...),
		PaintTotal:   sum2(buckets[CategoryPaint]...),
		OutworkTotal: sum2(buckets[CategoryOutwork]...),
	}
	t.Subtotal = sum2(t.PartsTotal, t.LabourTotal, t.PaintTotal, t.OutworkTotal)
	return t, nil
}

// ValidationResult is the outcome of ValidateFRCLineItem. It is a value, not
// an error, so callers can surface it to the reviewer as-is.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateFRCLineItem checks the only hard gate of the review: an adjusted
// line needs a reason and an actual total.
func ValidateFRCLineItem(line entities.FRCLineItem) ValidationResult {
	if line.Decision != entities.FRCDecisionAdjust {
		return ValidationResult{Valid: true}
	}
	if strings.TrimSpace(line.AdjustReason) == "" {
		return ValidationResult{Valid: false, Error: ErrAdjustReasonRequired.Error()}
	}
	if line.ActualTotal == nil {
		return ValidationResult{Valid: false, Error: ErrAdjustActualRequired.Error()}
	}
	return ValidationResult{Valid: true}
}

// Deltas compares an actual amount with its quoted amount.
type Deltas struct {
	Delta           float64 `json:"delta"`
	DeltaPercentage float64 `json:"delta_percentage"`
	IsOver          bool    `json:"is_over"`
	IsUnder         bool    `json:"is_under"`
}

// CalculateDeltas returns actual - quoted and its percentage of quoted.
// When quoted is 0 the percentage is reported as 0 instead of dividing by
// zero.
func CalculateDeltas(quoted, actual float64) Deltas {
	delta := sub2(actual, quoted)
	d := Deltas{
		Delta:   delta,
		IsOver:  delta > 0,
		IsUnder: delta < 0,
	}
	if quoted != 0 {
		pct, _ := decimal.NewFromFloat(delta).
			Div(decimal.NewFromFloat(quoted)).
			Mul(hundred).
			Round(moneyPlaces).
			Float64()
		d.DeltaPercentage = pct
	}
	return d
}

// DecisionInput is a reviewer's decision on one FRC line.
type DecisionInput struct {
	Decision    entities.FRCDecision
	ActualTotal *float64
	Actual      *entities.FRCAmounts
	Reason      string
}

// ApplyDecision moves line to the requested decision.
//
// pending may only be left, never re-entered. approved copies the quoted
// amounts into the actuals; adjust takes the given actual total and reason
// and must pass ValidateFRCLineItem. line is not modified.
func ApplyDecision(line entities.FRCLineItem, in DecisionInput) (entities.FRCLineItem, error) {
	if !in.Decision.IsValid() {
		return entities.FRCLineItem{}, ErrInvalidDecision
	}
	if in.Decision == entities.FRCDecisionPending {
		return entities.FRCLineItem{}, ErrInvalidDecisionTransition
	}

	out := line
	switch in.Decision {
	case entities.FRCDecisionApproved:
		quoted := line.Quoted
		out.Actual = &quoted
		out.ActualTotal = entities.Float(line.QuotedTotal)
		out.AdjustReason = ""
	case entities.FRCDecisionAdjust:
		out.AdjustReason = strings.TrimSpace(in.Reason)
		out.ActualTotal = nil
		if in.ActualTotal != nil {
			out.ActualTotal = entities.Float(Round2(*in.ActualTotal))
		}
		if in.Actual != nil {
			actual := roundAmounts(*in.Actual)
			out.Actual = &actual
		}
	}
	out.Decision = in.Decision

	if res := ValidateFRCLineItem(out); !res.Valid {
		if strings.TrimSpace(out.AdjustReason) == "" {
			return entities.FRCLineItem{}, ErrAdjustReasonRequired
		}
		return entities.FRCLineItem{}, ErrAdjustActualRequired
	}
	return out, nil
}

// FRCSummary is the reconciliation view of an FRC run.
type FRCSummary struct {
	Quoted         BreakdownTotals `json:"quoted"`
	Actual         BreakdownTotals `json:"actual"`
	QuotedMarkups  MarkupTotals    `json:"quoted_markups"`
	ActualMarkups  MarkupTotals    `json:"actual_markups"`
	QuotedSubtotal float64         `json:"quoted_subtotal"`
	ActualSubtotal float64         `json:"actual_subtotal"`
	QuotedVAT      float64         `json:"quoted_vat"`
	ActualVAT      float64         `json:"actual_vat"`
	QuotedTotal    float64         `json:"quoted_total"`
	ActualTotal    float64         `json:"actual_total"`
	Deltas         Deltas          `json:"deltas"`

	PendingLines  int `json:"pending_lines"`
	ApprovedLines int `json:"approved_lines"`
	AdjustedLines int `json:"adjusted_lines"`
}

// CalculateFRCMarkups applies frc.Markups to the estimate-sourced lines, on
// their quoted part and outwork amounts or, with useActual, on the actual
// ones. An adjusted line without actual amounts keeps its quoted markup and a
// line without an actual total adds nothing to the actual markups.
func CalculateFRCMarkups(frc entities.FRC, useActual bool) MarkupTotals {
	var b markupBuckets
	for _, l := range frc.LineItems {
		if l.Source != entities.FRCLineSourceEstimate {
			continue
		}
		amounts := l.Quoted
		if useActual {
			switch {
			case l.Actual != nil:
				amounts = *l.Actual
			case l.ActualTotal == nil:
				continue
			}
		}
		b.add(l.ProcessType, l.PartType, amounts.PartPrice, amounts.OutworkCharge, frc.Markups)
	}
	return b.totals()
}

// SummarizeFRC computes quoted and actual breakdowns, markups, VAT and grand
// totals of frc and the delta between the two grand totals. The quoted grand
// total of an FRC without additionals equals its estimate's total.
func (c *Calculator) SummarizeFRC(frc entities.FRC) (FRCSummary, error) {
	quoted, err := c.CalculateBreakdownTotals(frc.LineItems, false)
	if err != nil {
		return FRCSummary{}, err
	}
	actual, err := c.CalculateBreakdownTotals(frc.LineItems, true)
	if err != nil {
		return FRCSummary{}, err
	}

	s := FRCSummary{
		Quoted:        quoted,
		Actual:        actual,
		QuotedMarkups: CalculateFRCMarkups(frc, false),
		ActualMarkups: CalculateFRCMarkups(frc, true),
	}
	s.QuotedSubtotal = sum2(quoted.Subtotal, s.QuotedMarkups.Total)
	s.ActualSubtotal = sum2(actual.Subtotal, s.ActualMarkups.Total)
	s.QuotedVAT = CalculateVAT(s.QuotedSubtotal, frc.VATPercentage)
	s.ActualVAT = CalculateVAT(s.ActualSubtotal, frc.VATPercentage)
	s.QuotedTotal = CalculateTotal(s.QuotedSubtotal, s.QuotedVAT)
	s.ActualTotal = CalculateTotal(s.ActualSubtotal, s.ActualVAT)
	s.Deltas = CalculateDeltas(s.QuotedTotal, s.ActualTotal)

	for _, l := range frc.LineItems {
		switch l.Decision {
		case entities.FRCDecisionApproved:
			s.ApprovedLines++
		case entities.FRCDecisionAdjust:
			s.AdjustedLines++
		default:
			s.PendingLines++
		}
	}
	return s, nil
}

// ValidateFRCForCompletion checks that every line is decided and valid.
func ValidateFRCForCompletion(frc entities.FRC) error {
	for _, l := range frc.LineItems {
		if l.Decision == entities.FRCDecisionPending || l.Decision == "" {
			return ErrFRCLinesPending
		}
		if res := ValidateFRCLineItem(l); !res.Valid {
			return ErrFRCLineInvalid
		}
	}
	return nil
}

func roundAmounts(a entities.FRCAmounts) entities.FRCAmounts {
	return entities.FRCAmounts{
		PartPrice:     Round2(a.PartPrice),
		StripAssemble: Round2(a.StripAssemble),
		LabourCost:    Round2(a.LabourCost),
		PaintCost:     Round2(a.PaintCost),
		OutworkCharge: Round2(a.OutworkCharge),
	}
}
