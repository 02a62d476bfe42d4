package scoring

import "math"

// roundHalfUp rounds half-way values towards positive infinity, so -2.5
// becomes -2 and 2.5 becomes 3.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return roundHalfUp(x*100) / 100
}

// Round5 rounds to the nearest multiple of 5.
func Round5(x float64) float64 {
	return roundHalfUp(x/5) * 5
}
