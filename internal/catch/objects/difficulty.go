package objects

// Preempt bounds for approach rate 0, 5 and 10.
const (
	PreemptMax = 1800.0
	PreemptMid = 1200.0
	PreemptMin = 450.0
)

// DifficultyRange maps a 0-10 difficulty value onto [min, mid, max] piecewise-linearly.
// 5 maps to mid, values above 5 move towards max, values below towards min.
func DifficultyRange(difficulty, min, mid, max float64) float64 {
	switch {
	case difficulty > 5:
		return mid + (max-mid)*(difficulty-5)/5
	case difficulty < 5:
		return mid - (mid-min)*(5-difficulty)/5
	default:
		return mid
	}
}

// PreemptFromApproachRate returns the visible time before StartTime.
// Higher approach rates give shorter preempts.
func PreemptFromApproachRate(ar float64) float64 {
	return DifficultyRange(ar, PreemptMax, PreemptMid, PreemptMin)
}

// ScaleFromCircleSize returns the object scale for a circle size setting.
func ScaleFromCircleSize(cs float64) float32 {
	return float32((1.0 - 0.7*(cs-5)/5) / 2)
}
