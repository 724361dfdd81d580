package costing

import (
	"fmt"

	"claims_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ThresholdColor is the risk band of an estimate against the borderline
// write-off value.
type ThresholdColor string

const (
	ThresholdNormal ThresholdColor = "normal"
	ThresholdGreen  ThresholdColor = "green"
	ThresholdYellow ThresholdColor = "yellow"
	ThresholdOrange ThresholdColor = "orange"
	ThresholdRed    ThresholdColor = "red"
)

var (
	criticalBand = decimal.NewFromInt(90)
	warningBand  = decimal.NewFromInt(60)
	cautionBand  = decimal.NewFromInt(25)
)

// ThresholdResult classifies an estimate total.
type ThresholdResult struct {
	Color       ThresholdColor `json:"color"`
	Percentage  float64        `json:"percentage"`
	Message     string         `json:"message"`
	ShowWarning bool           `json:"show_warning"`
}

// CalculateEstimateThreshold compares estimateTotal with the borderline
// write-off value. A non-positive borderline means none is configured.
//
// Bands are inclusive on their lower bound: 90 is red, 60 orange, 25 yellow.
// Percentage is reported unrounded. The message truncates it to two places so
// it never reads as the next band up.
func CalculateEstimateThreshold(estimateTotal, retailBorderline float64) ThresholdResult {
	if retailBorderline <= 0 {
		return ThresholdResult{Color: ThresholdNormal, Percentage: 0, ShowWarning: false}
	}

	pct := decimal.NewFromFloat(estimateTotal).
		Div(decimal.NewFromFloat(retailBorderline)).
		Mul(hundred)
	pctFloat, _ := pct.Float64()
	display := pct.Truncate(moneyPlaces).String()

	switch {
	case pct.GreaterThanOrEqual(criticalBand):
		return ThresholdResult{
			Color:       ThresholdRed,
			Percentage:  pctFloat,
			Message:     fmt.Sprintf("Critical: estimate is at %s%% of the borderline write-off value", display),
			ShowWarning: true,
		}
	case pct.GreaterThanOrEqual(warningBand):
		return ThresholdResult{
			Color:       ThresholdOrange,
			Percentage:  pctFloat,
			Message:     fmt.Sprintf("Warning: estimate is at %s%% of the borderline write-off value", display),
			ShowWarning: true,
		}
	case pct.GreaterThanOrEqual(cautionBand):
		return ThresholdResult{
			Color:      ThresholdYellow,
			Percentage: pctFloat,
			Message:    fmt.Sprintf("Estimate is at %s%% of the borderline write-off value", display),
		}
	default:
		return ThresholdResult{
			Color:      ThresholdGreen,
			Percentage: pctFloat,
			Message:    fmt.Sprintf("Estimate is at %s%% of the borderline write-off value", display),
		}
	}
}

// WriteOffValues are the money thresholds derived from a vehicle's retail
// value and a client's write-off percentages.
type WriteOffValues struct {
	Borderline float64 `json:"borderline"`
	Total      float64 `json:"total"`
	Salvage    float64 `json:"salvage"`
}

// CalculateWriteOffValues converts write-off percentages into amounts.
func CalculateWriteOffValues(retailValue float64, p entities.WriteOffPercentages) WriteOffValues {
	return WriteOffValues{
		Borderline: percentOf(retailValue, p.Borderline),
		Total:      percentOf(retailValue, p.Total),
		Salvage:    percentOf(retailValue, p.Salvage),
	}
}
