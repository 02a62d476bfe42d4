package scoring

// CapabilityLevel maps a 0-100 score (usually a manual override) to a
// capability level 0-5. Negative scores map to 0.
func CapabilityLevel(score float64) int {
	switch {
	case score < 15:
		return 0
	case score < 31:
		return 1
	case score < 51:
		return 2
	case score < 71:
		return 3
	case score < 91:
		return 4
	default:
		return 5
	}
}

// SuggestedCapabilityLevel maps a scope score to the suggested target level
// 1-4 shown in the refined scope and the canvas.
func SuggestedCapabilityLevel(score float64) int {
	switch {
	case score >= 75:
		return 4
	case score >= 50:
		return 3
	case score >= 25:
		return 2
	default:
		return 1
	}
}
