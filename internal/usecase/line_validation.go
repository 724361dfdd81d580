package usecase

import (
	"errors"
	"fmt"
	"strings"

	"claims_xpto/internal/domain/costing"
	"claims_xpto/internal/domain/entities"
	"claims_xpto/internal/infrastructure/metrics"
)

// validateLineItem rejects lines that cannot be priced: unknown process
// types, unknown part types and negative quantities, prices or percentages.
func validateLineItem(registry costing.Registry, item entities.LineItem) error {
	if _, err := registry.Lookup(item.ProcessType); err != nil {
		return &costing.UnknownProcessTypeError{Code: item.ProcessType, LineID: item.ID}
	}
	if strings.TrimSpace(item.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidLineItem)
	}
	if item.PartType != "" && !item.PartType.IsValid() {
		return fmt.Errorf("%w: unknown part_type %q", ErrInvalidLineItem, item.PartType)
	}

	amounts := map[string]*float64{
		"strip_assemble_hours": item.StripAssembleHours,
		"labour_hours":         item.LabourHours,
		"paint_panels":         item.PaintPanels,
		"part_price_nett":      item.PartPriceNett,
		"outwork_charge_nett":  item.OutworkChargeNett,
		"strip_assemble":       item.StripAssemble,
		"labour_cost":          item.LabourCost,
		"paint_cost":           item.PaintCost,
	}
	for name, v := range amounts {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidLineItem, name)
		}
	}

	percentages := map[string]*float64{
		"part_percentage":           item.Betterment.PartPercentage,
		"strip_assemble_percentage": item.Betterment.StripAssemblePercentage,
		"labour_percentage":         item.Betterment.LabourPercentage,
		"paint_percentage":          item.Betterment.PaintPercentage,
		"outwork_percentage":        item.Betterment.OutworkPercentage,
	}
	for name, v := range percentages {
		if v != nil && (*v < 0 || *v > 100) {
			return fmt.Errorf("%w: betterment %s must be between 0 and 100", ErrInvalidLineItem, name)
		}
	}
	return nil
}

func recordUnknownProcessType(m *metrics.Metrics, operation string, err error) {
	if errors.Is(err, costing.ErrUnknownProcessType) {
		m.UnknownProcessType(operation)
	}
}
