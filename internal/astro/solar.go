package astro

// Solar mean-element polynomials, first order in Julian centuries.
const (
	solarMeanLongitude0 = 280.46646
	solarMeanLongitude1 = 36000.76983
	solarMeanAnomaly0   = 357.52911
	solarMeanAnomaly1   = 35999.05029
)

// solarCenter is the three-term equation of center for the Sun, in degrees,
// given the mean anomaly in degrees.
func solarCenter(m float64) float64 {
	return 1.914602*sinDeg(m) + 0.019993*sinDeg(2*m) + 0.000289*sinDeg(3*m)
}

// SolarLongitude returns the apparent ecliptic longitude of the Sun at jd,
// in degrees in [0, 360).
func SolarLongitude(jd float64) float64 {
	t := centuries(jd)
	l := solarMeanLongitude0 + solarMeanLongitude1*t
	m := solarMeanAnomaly0 + solarMeanAnomaly1*t
	return normalizeDegrees(l + solarCenter(m))
}
