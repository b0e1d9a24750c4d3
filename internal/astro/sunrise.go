package astro

import "math"

// Site is the geographic reference point for sunrise computation.
// Latitude and Longitude are in degrees (north and east positive);
// UTCOffset is the civil clock offset in hours.
type Site struct {
	Latitude  float64
	Longitude float64
	UTCOffset float64
}

// Kathmandu is the default reference site (27.7172 N, 85.3240 E, UTC+5:45).
func Kathmandu() Site {
	return Site{Latitude: 27.7172, Longitude: 85.3240, UTCOffset: 5.75}
}

// sunriseElevation is the solar elevation at rise, in degrees: the centre
// of the disc sits 0.833 degrees below the horizon once refraction and the
// solar radius are accounted for.
const sunriseElevation = -0.833

// Sunrise returns the Julian day of local sunrise on the civil day
// containing jd, for the given site.
//
// The hour-angle cosine is clamped to [-1, 1]; during continuous polar day
// or night the result saturates at a zero- or twelve-hour half arc instead
// of failing.
func Sunrise(jd float64, site Site) float64 {
	day0 := math.Floor(jd+0.5) - 0.5 // 00:00 UT of the civil day
	t := centuries(day0)

	l := solarMeanLongitude0 + solarMeanLongitude1*t
	m := solarMeanAnomaly0 + solarMeanAnomaly1*t
	c := solarCenter(m)

	// Equation of time from the equation-of-center series, scaled to
	// clock minutes at four minutes per degree.
	eotMinutes := -4.0 * c

	lambda := normalizeDegrees(l + c)
	obliquity := 23.4393 - 0.0130*t
	declination := math.Asin(sinDeg(obliquity)*sinDeg(lambda)) / degRad

	// Local solar noon on the site clock, in hours.
	noon := 12.0 + site.UTCOffset - site.Longitude/15.0 + eotMinutes/60.0

	cosH := (sinDeg(sunriseElevation) - sinDeg(site.Latitude)*sinDeg(declination)) /
		(cosDeg(site.Latitude) * cosDeg(declination))
	cosH = math.Max(-1, math.Min(1, cosH))
	hourAngle := math.Acos(cosH) / degRad

	riseLocal := noon - hourAngle/15.0
	return day0 + (riseLocal-site.UTCOffset)/24.0
}
