package utils

import "math"

// RoundWithFourDecimalPlace arredonda para 4 casas, usado nas razões de crescimento
func RoundWithFourDecimalPlace(f float64) float64 {
	return roundTo(f, 10000)
}

func roundTo(f float64, scale float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*scale) / scale
}

// SafeDivide retorna zero quando o denominador é zero
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}
