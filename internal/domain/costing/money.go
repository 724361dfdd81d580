package costing

import "github.com/shopspring/decimal"

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Round2 rounds v to two decimal places, half away from zero.
//
// Rounding goes through decimal so 1.005 becomes 1.01 rather than the
// binary-float 1.00.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(moneyPlaces).Float64()
	return f
}

func sum2(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Round(moneyPlaces).Float64()
	return f
}

func mul2(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(moneyPlaces).Float64()
	return f
}

// percentOf returns base * pct / 100 rounded to cents.
func percentOf(base, pct float64) float64 {
	f, _ := decimal.NewFromFloat(base).Mul(decimal.NewFromFloat(pct)).Div(hundred).Round(moneyPlaces).Float64()
	return f
}

func sub2(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(moneyPlaces).Float64()
	return f
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
