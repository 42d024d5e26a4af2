package physics

import "github.com/shopspring/decimal"

// digits used to strip floating point noise before ceil/floor
const noiseDigits = 6

func Round(value float64, digits int32) float64 {
	return decimal.NewFromFloat(value).Round(digits).InexactFloat64()
}

func RoundTwoDecimals(value float64) float64 {
	return Round(value, 2)
}

// Ceil rounds up, 2.0000000001 is still 2
func Ceil(value float64) float64 {
	return decimal.NewFromFloat(value).Round(noiseDigits).Ceil().InexactFloat64()
}

// Floor rounds down, 1.9999999999 is still 2
func Floor(value float64) float64 {
	return decimal.NewFromFloat(value).Round(noiseDigits).Floor().InexactFloat64()
}
