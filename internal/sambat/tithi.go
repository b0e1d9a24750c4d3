package sambat

import (
	"math"

	"github.com/rmanandhar/nepalsambat-api/internal/astro"
)

// Each tithi spans twelve degrees of solar-lunar elongation.
const tithiArc = 12.0

// dayBoundaryOffset approximates the calendar's diurnal boundary as a
// fraction of a day past midnight; a tithi that starts late but reaches
// this instant still governs the civil day.
const dayBoundaryOffset = 0.95

// tithiAt returns the 1-30 tithi running at the instant jd.
func tithiAt(jd float64) int {
	n := int(math.Ceil(astro.Elongation(jd) / tithiArc))
	if n < 1 {
		// Exact conjunction; the first tithi has just begun.
		n = 1
	}
	return n
}

// tithiNumber resolves the tithi governing the civil day containing jd
// (taken at 00:00 UT): the larger of the tithi at local sunrise and the
// tithi at the diurnal boundary.
func (c *Converter) tithiNumber(jd float64) int {
	atSunrise := tithiAt(astro.Sunrise(jd, c.site))
	atBoundary := tithiAt(jd + dayBoundaryOffset)
	if atBoundary > atSunrise {
		return atBoundary
	}
	return atSunrise
}

// resolveTithi derives the full tithi for the civil day containing jd,
// classifying it against the previous day: equal numbers mean the tithi
// spans two sunrises (repeated), a jump of two or more means a tithi began
// and ended between sunrises (skipped).
func (c *Converter) resolveTithi(jd float64) Tithi {
	number := c.tithiNumber(jd)
	previous := c.tithiNumber(jd - 1)

	typ := TithiNormal
	switch {
	case number == previous:
		typ = TithiRepeated
	case number-previous >= 2:
		typ = TithiSkipped
	}

	adjusted := (number-1)%15 + 1
	paksha := PakshaWaxing
	if number > 15 {
		paksha = PakshaWaning
	}

	return Tithi{
		Number:         number,
		AdjustedNumber: adjusted,
		Paksha:         paksha,
		Name:           tithiName(adjusted, paksha),
		Type:           typ,
	}
}
