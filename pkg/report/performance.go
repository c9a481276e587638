package report

// Classification boundaries for actual/expected ratio. The OnTarget band is
// inclusive on both edges; the OffTarget band is inclusive at 0.70 and 1.30.
const (
	OnTargetLowerBound  = 0.85
	OnTargetUpperBound  = 1.15
	OffTargetLowerBound = 0.70
	OffTargetUpperBound = 1.30
)

// Classify assigns a performance status to actual hours against an expected
// target. Returns ErrInvalidTarget when expected is not positive.
func Classify(actual float64, expected float64) (PerformanceStatus, error) {
	if expected <= 0 {
		return "", ErrInvalidTarget
	}
	ratio := actual / expected
	switch {
	case ratio < OffTargetLowerBound || ratio > OffTargetUpperBound:
		return StatusSignificantlyOff, nil
	case ratio < OnTargetLowerBound || ratio > OnTargetUpperBound:
		return StatusOffTarget, nil
	default:
		return StatusOnTarget, nil
	}
}
