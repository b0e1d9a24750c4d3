// Package astro implements the truncated astronomical models behind the
// Nepal Sambat calendar: Julian day conversion, solar and lunar ecliptic
// longitude, local sunrise, and new moon location.
//
// Every function is a pure function over float64 scalars. The series are
// truncated low-precision models; they agree with reference ephemerides to
// a few hundredths of a degree over a span of several centuries around
// J2000, which is sufficient to place new moons and tithi boundaries.
package astro

import "math"

// J2000 is the Julian day of the standard epoch 2000-01-01 12:00 TT.
const J2000 = 2451545.0

// degRad converts degrees to radians.
const degRad = math.Pi / 180.0

func sinDeg(deg float64) float64 { return math.Sin(deg * degRad) }

func cosDeg(deg float64) float64 { return math.Cos(deg * degRad) }

// normalizeDegrees reduces an angle to the half-open range [0, 360).
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// centuries returns Julian centuries elapsed since J2000 at jd.
func centuries(jd float64) float64 {
	return (jd - J2000) / 36525.0
}
