package sambat

import "github.com/rmanandhar/nepalsambat-api/internal/astro"

// monthIndex matches a normalized solar longitude against the ordered
// sector table and returns the 1-based month number. A normalized
// longitude always falls in some sector; the fallback to month 1 exists
// only to keep the function total.
func monthIndex(longitude float64) int {
	for i := range monthSectorStart {
		start := monthSectorStart[i]
		end := monthSectorStart[(i+1)%12]
		if start < end {
			if longitude >= start && longitude < end {
				return i + 1
			}
		} else if longitude >= start || longitude < end {
			return i + 1
		}
	}
	return 1
}

// resolveMonth maps jd to its Nepal Sambat month. The month is the solar
// sector holding the Sun at the preceding new moon; the sector at the
// following new moon decides the leap and skipped flags.
func (c *Converter) resolveMonth(jd float64) Month {
	lastNM := astro.LastNewMoon(jd)
	idx := monthIndex(astro.SolarLongitude(lastNM))

	nextNM := astro.NextNewMoon(jd)
	nextIdx := monthIndex(astro.SolarLongitude(nextNM))

	leap, skipped := c.rule.Classify(idx, nextIdx)

	name := monthName(idx)
	return Month{
		Number:  idx,
		Name:    name.Roman,
		Native:  name.Native,
		Leap:    leap,
		Skipped: skipped,
	}
}
