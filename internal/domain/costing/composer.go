package costing

import "claims_xpto/internal/domain/entities"

// ComposeFinalEstimateLines builds the FRC lines of an estimate and its
// additionals record (nil when none was raised).
//
// Rules:
//   - estimate lines targeted by an approved removal or an approved reversal
//     are dropped; pending and declined ones leave their target in place;
//   - removal lines themselves never appear;
//   - approved additionals lines appear (reversal lines included) unless an
//     approved reversal targets them;
//   - surviving estimate lines come first, then additionals lines, each in
//     their original order.
//
// Every composed line is an independent value snapshot priced at its source's
// rates. IDs are left empty for the caller to assign.
func (c *Calculator) ComposeFinalEstimateLines(estimate entities.Estimate, additionals *entities.AdditionalsRecord) ([]entities.FRCLineItem, error) {
	removed := map[string]struct{}{}
	reversed := map[string]struct{}{}
	if additionals != nil {
		for _, l := range additionals.LineItems {
			if l.Status != entities.AdditionalStatusApproved {
				continue
			}
			switch l.EffectiveAction() {
			case entities.AdditionalActionRemoved:
				if l.OriginalEstimateLineID != "" {
					removed[l.OriginalEstimateLineID] = struct{}{}
				}
			case entities.AdditionalActionReversal:
				if l.ReversesLineID != "" {
					reversed[l.ReversesLineID] = struct{}{}
				}
			}
		}
	}

	out := make([]entities.FRCLineItem, 0, len(estimate.LineItems))
	for _, l := range estimate.LineItems {
		if _, ok := removed[l.ID]; ok {
			continue
		}
		if _, ok := reversed[l.ID]; ok {
			continue
		}
		composed, err := c.snapshot(l, entities.FRCLineSourceEstimate, "", estimate.LabourRate, estimate.PaintRate)
		if err != nil {
			return nil, err
		}
		out = append(out, composed)
	}

	if additionals == nil {
		return out, nil
	}

	for _, l := range additionals.LineItems {
		if l.Status != entities.AdditionalStatusApproved {
			continue
		}
		action := l.EffectiveAction()
		if action == entities.AdditionalActionRemoved {
			continue
		}
		if _, ok := reversed[l.ID]; ok {
			continue
		}
		composed, err := c.snapshot(l.LineItem, entities.FRCLineSourceAdditionals, action, additionals.LabourRate, additionals.PaintRate)
		if err != nil {
			return nil, err
		}
		out = append(out, composed)
	}
	return out, nil
}

func (c *Calculator) snapshot(l entities.LineItem, source entities.FRCLineSource, action entities.AdditionalAction, labourRate, paintRate float64) (entities.FRCLineItem, error) {
	b, err := c.Breakdown(l, labourRate, paintRate)
	if err != nil {
		return entities.FRCLineItem{}, err
	}
	src := l.Clone()
	return entities.FRCLineItem{
		Source:                   source,
		SourceLineID:             l.ID,
		ProcessType:              l.ProcessType,
		Description:              l.Description,
		PartType:                 l.PartType,
		Action:                   action,
		QuotedStripAssembleHours: src.StripAssembleHours,
		QuotedLabourHours:        src.LabourHours,
		QuotedPaintPanels:        src.PaintPanels,
		QuotedLabourRate:         labourRate,
		QuotedPaintRate:          paintRate,
		Quoted: entities.FRCAmounts{
			PartPrice:     b.PartPrice,
			StripAssemble: b.StripAssemble,
			LabourCost:    b.LabourCost,
			PaintCost:     b.PaintCost,
			OutworkCharge: b.OutworkCharge,
		},
		QuotedTotal: b.Total,
		Decision:    entities.FRCDecisionPending,
	}, nil
}
