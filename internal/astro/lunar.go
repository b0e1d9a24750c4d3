package astro

// LunarLongitude returns the apparent ecliptic longitude of the Moon at jd,
// in degrees in [0, 360).
//
// The model is a truncated main-problem series over the Moon's mean
// longitude L', mean elongation D, the Sun's mean anomaly M, the Moon's
// mean anomaly M', and the argument of latitude F. The thirteen periodic
// terms cover the equation of center, evection, variation and the annual
// equation plus the next tier of corrections; coefficients are in degrees.
func LunarLongitude(jd float64) float64 {
	t := centuries(jd)

	lp := 218.3164477 + 481267.88123421*t // mean longitude
	d := 297.8501921 + 445267.1114034*t   // mean elongation from the Sun
	m := 357.5291092 + 35999.0502909*t    // solar mean anomaly
	mp := 134.9633964 + 477198.8675055*t  // lunar mean anomaly
	f := 93.2720950 + 483202.0175233*t    // argument of latitude

	corr := 6.288774*sinDeg(mp) +
		1.274027*sinDeg(2*d-mp) + // evection
		0.658314*sinDeg(2*d) + // variation
		0.213618*sinDeg(2*mp) -
		0.185116*sinDeg(m) - // annual equation
		0.114332*sinDeg(2*f) +
		0.058793*sinDeg(2*d-2*mp) +
		0.057066*sinDeg(2*d-m-mp) +
		0.053322*sinDeg(2*d+mp) +
		0.045758*sinDeg(2*d-m) -
		0.040923*sinDeg(m-mp) -
		0.034720*sinDeg(d) -
		0.030383*sinDeg(m+mp)

	return normalizeDegrees(lp + corr)
}

// Elongation returns the angular separation of the Moon from the Sun at jd,
// in degrees in [0, 360). It is near zero at new moon and near 180 at full
// moon, and drives both tithi resolution and new moon refinement.
func Elongation(jd float64) float64 {
	return normalizeDegrees(LunarLongitude(jd) - SolarLongitude(jd) + 360)
}
