package sambat

// LeapSkipRule classifies a month from the solar-sector indices of two
// consecutive new moons: the one opening the month and the one after it.
//
// The rule is pluggable because the reference methodology carries two
// differently tuned variants of the thresholds; alternate rules can be
// swapped in once validated against an independent ephemeris.
type LeapSkipRule interface {
	Classify(current, next int) (leap, skipped bool)
}

// DefaultRule is the reference heuristic. A month is leap (anala) when two
// consecutive new moons land in the same solar sector, and skipped (nhala)
// when the next new moon's sector index exceeds the current one by exactly
// two. The exact-equality and difference-of-two thresholds are preserved
// from the reference methodology; they are pending empirical validation
// and deliberately not generalized.
type DefaultRule struct{}

func (DefaultRule) Classify(current, next int) (leap, skipped bool) {
	return next == current, next-current == 2
}
