package pricing

import "github.com/shopspring/decimal"

// currencyDecimals is the rounding policy table: decimal places per currency
// code. Currencies not listed here use defaultDecimals. New zero-decimal
// currencies are added here, not in the engine.
var currencyDecimals = map[string]int32{
	"sat": 0,
	"yen": 0,
	"jpy": 0,
}

const defaultDecimals = int32(2)

func decimalsFor(currency string) int32 {
	if d, ok := currencyDecimals[currency]; ok {
		return d
	}
	return defaultDecimals
}

// roundPrice rounds half-up to the currency's decimal places. Prices are
// never negative, so half away from zero and half-up coincide.
func roundPrice(value float64, currency string) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(decimalsFor(currency)).Float64()
	return rounded
}
