package entities

// LineItem is one cost line of an estimate, additionals record or FRC source.
//
// Quantities and costs are pointers because a placeholder line may be created
// empty and filled in later; nil means "not entered", which is different from 0.
//
// Cost resolution:
//   - StripAssemble, LabourCost and PaintCost hold a stored amount. When nil the
//     amount is derived from the matching quantity and the current rate.
//   - Total is the authoritative money value, recomputed on every change.
type LineItem struct {
	ID          string      `json:"id"`
	ProcessType ProcessType `json:"process_type"`
	Description string      `json:"description"`
	PartType    PartType    `json:"part_type,omitempty"`
	PartNumber  string      `json:"part_number,omitempty"`

	StripAssembleHours *float64 `json:"strip_assemble_hours,omitempty"`
	LabourHours        *float64 `json:"labour_hours,omitempty"`
	PaintPanels        *float64 `json:"paint_panels,omitempty"`

	PartPriceNett     *float64 `json:"part_price_nett,omitempty"`
	OutworkChargeNett *float64 `json:"outwork_charge_nett,omitempty"`

	StripAssemble *float64 `json:"strip_assemble,omitempty"`
	LabourCost    *float64 `json:"labour_cost,omitempty"`
	PaintCost     *float64 `json:"paint_cost,omitempty"`

	Betterment Betterment `json:"betterment"`

	Total float64 `json:"total"`
}

// Betterment holds per-component deduction percentages (0-100).
type Betterment struct {
	PartPercentage          *float64 `json:"part_percentage,omitempty"`
	StripAssemblePercentage *float64 `json:"strip_assemble_percentage,omitempty"`
	LabourPercentage        *float64 `json:"labour_percentage,omitempty"`
	PaintPercentage         *float64 `json:"paint_percentage,omitempty"`
	OutworkPercentage       *float64 `json:"outwork_percentage,omitempty"`
}

// Clone returns a deep copy so callers can keep an independent snapshot.
func (l LineItem) Clone() LineItem {
	out := l
	out.StripAssembleHours = cloneFloat(l.StripAssembleHours)
	out.LabourHours = cloneFloat(l.LabourHours)
	out.PaintPanels = cloneFloat(l.PaintPanels)
	out.PartPriceNett = cloneFloat(l.PartPriceNett)
	out.OutworkChargeNett = cloneFloat(l.OutworkChargeNett)
	out.StripAssemble = cloneFloat(l.StripAssemble)
	out.LabourCost = cloneFloat(l.LabourCost)
	out.PaintCost = cloneFloat(l.PaintCost)
	out.Betterment = Betterment{
		PartPercentage:          cloneFloat(l.Betterment.PartPercentage),
		StripAssemblePercentage: cloneFloat(l.Betterment.StripAssemblePercentage),
		LabourPercentage:        cloneFloat(l.Betterment.LabourPercentage),
		PaintPercentage:         cloneFloat(l.Betterment.PaintPercentage),
		OutworkPercentage:       cloneFloat(l.Betterment.OutworkPercentage),
	}
	return out
}

// Float returns a pointer to v. Handy for building line items in code and tests.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
