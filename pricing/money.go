package pricing

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to cents, half away from zero
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
