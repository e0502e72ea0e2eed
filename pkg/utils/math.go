package utils

import "math"

// RoundDecimal rounds value half away from zero to the given number of
// decimal places: RoundDecimal(3.14159, 2) is 3.14, RoundDecimal(-1.005, 1) is -1.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
