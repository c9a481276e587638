package report

import "math"

// SignificanceThreshold is the minimum relative week-over-week change that
// counts as a direction. It is deliberately not configurable so trend output
// stays comparable across reports.
const SignificanceThreshold = 0.05

// TrendOf derives the directional signal for an entity with the given
// current-week total. hasPrior is false when the entity had no total in the
// exact prior calendar week. A prior of zero with current activity is treated
// as New rather than an unbounded increase.
func TrendOf(current float64, prior float64, hasPrior bool) TrendSignal {
	if !hasPrior {
		return TrendNew
	}
	if prior == 0 {
		if current > 0 {
			return TrendNew
		}
		return TrendFlat
	}
	change := (current - prior) / prior
	if math.Abs(change) < SignificanceThreshold {
		return TrendFlat
	}
	if change > 0 {
		return TrendUp
	}
	return TrendDown
}

// trendAgainst looks up name in the prior totals map (nil when the prior week
// is absent entirely) and derives the signal for its current total.
func trendAgainst(current float64, name string, prior map[string]float64) TrendSignal {
	if prior == nil {
		return TrendNew
	}
	priorHours, ok := prior[name]
	return TrendOf(current, priorHours, ok)
}
