package sambat

import "math"

// Epoch holds the historical constants behind year numbering. They are
// injected rather than inlined so tests can substitute them.
type Epoch struct {
	// KaliyugaJD is the Julian day of the Kaliyuga epoch, the reference
	// instant the calendar's year count is derived from.
	KaliyugaJD float64
	// YearLength is the mean solar year in days used to count elapsed
	// cycles since the epoch.
	YearLength float64
}

// DefaultEpoch returns the reference constants: the Kaliyuga epoch of
// 3102 BC and the sidereal year length.
func DefaultEpoch() Epoch {
	return Epoch{KaliyugaJD: 588465.5, YearLength: 365.25636}
}

// resolveYear derives the Nepal Sambat year for jd given the resolved
// month number. The (10-month)*30-day shift aligns the solar-cycle count
// with the calendar's own year boundary; the additive chain then maps the
// elapsed Kaliyuga cycle to the current Kali year, to the common era, and
// finally to Nepal Sambat.
func (c *Converter) resolveYear(jd float64, month int) int {
	days := jd - c.epoch.KaliyugaJD + float64((10-month)*30)
	cycles := int(math.Floor(days / c.epoch.YearLength))
	return cycles + 1 - 3101 - 880
}
