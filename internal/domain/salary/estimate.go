// Package salary turns a partial salary range into a single monthly figure.
package salary

const (
	// LowerOnlyFactor scales a range that names only its lower bound.
	LowerOnlyFactor = 1.2
	// UpperOnlyFactor scales a range that names only its upper bound.
	UpperOnlyFactor = 0.8
)

// Estimate returns a point estimate for the range [from, to].
// A zero bound counts as missing. ok is false when both bounds are missing.
func Estimate(from, to float64) (value float64, ok bool) {
	switch {
	case from != 0 && to != 0:
		return (from + to) / 2, true
	case from != 0:
		return from * LowerOnlyFactor, true
	case to != 0:
		return to * UpperOnlyFactor, true
	default:
		return 0, false
	}
}

// EstimatePtr is Estimate for nullable bounds; nil is the same as zero.
func EstimatePtr(from, to *float64) (float64, bool) {
	return Estimate(deref(from), deref(to))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
