package astro

import "math"

// Lunation index anchors. The forward and backward searches are tuned
// independently and are deliberately not reciprocal: the forward estimate
// shares its anchor with the mean new moon polynomial, while the backward
// estimate uses its own reference conjunction and synodic-month density.
const (
	forwardAnchorJD  = 2415020.75933
	forwardSynodic   = 29.53058868
	backwardAnchorJD = 2415021.076998695
	backwardSynodic  = 29.530588853
)

// Newton refinement bounds for LastNewMoon.
const (
	refineMaxSteps  = 10
	refineStep      = 0.01 // days, finite-difference width
	refineTolerance = 0.01 // degrees of elongation
)

// meanNewMoon evaluates the corrected mean new moon of lunation k counted
// from the 1900 epoch, as a Julian day.
//
// The base polynomial is in the lunation count and centuries T = k/1236.85;
// the eleven-term periodic correction depends on the solar mean anomaly M,
// the lunar mean anomaly M' and the Moon's argument of latitude F at the
// mean conjunction. A delta-T term converts to universal time.
func meanNewMoon(k float64) float64 {
	t := k / 1236.85
	t2 := t * t
	t3 := t2 * t

	jd := forwardAnchorJD + forwardSynodic*k + 0.0001178*t2 - 0.000000155*t3
	jd += 0.00033 * sinDeg(166.56+132.87*t-0.009173*t2)

	m := 359.2242 + 29.10535608*k - 0.0000333*t2 - 0.00000347*t3
	mp := 306.0253 + 385.81691806*k + 0.0107306*t2 + 0.00001236*t3
	f := 21.2964 + 390.67050646*k - 0.0016528*t2 - 0.00000239*t3

	c := (0.1734-0.000393*t)*sinDeg(m) + 0.0021*sinDeg(2*m)
	c -= 0.4068 * sinDeg(mp)
	c += 0.0161 * sinDeg(2*mp)
	c -= 0.0004 * sinDeg(3*mp)
	c += 0.0104 * sinDeg(2*f)
	c -= 0.0051 * sinDeg(m+mp)
	c -= 0.0074 * sinDeg(m-mp)
	c += 0.0004 * sinDeg(2*f+m)
	c -= 0.0004 * sinDeg(2*f-m)
	c -= 0.0006 * sinDeg(2*f+mp)
	c += 0.0010 * sinDeg(2*f-mp)
	c += 0.0005 * sinDeg(2*mp+m)

	var deltaT float64
	if t < -11 {
		deltaT = 0.001 + 0.000839*t + 0.0002261*t2 - 0.00000845*t3 - 0.000000081*t*t3
	} else {
		deltaT = -0.000278 + 0.000265*t + 0.000025*t2
	}

	return jd + c - deltaT
}

// NextNewMoon returns the closed-form estimate of the first new moon after
// jd. There is no iterative refinement; the corrected mean conjunction is
// accurate to well under a day, which is all the month resolver needs.
func NextNewMoon(jd float64) float64 {
	k := math.Floor((jd-forwardAnchorJD)/forwardSynodic) + 1
	return meanNewMoon(k)
}

// LastNewMoon returns the Julian day of the last new moon at or before jd.
//
// The closed-form estimate is refined with at most ten Newton steps on the
// signed elongation, using a finite-difference slope over a 0.01-day
// interval. If the refinement does not reach the 0.01 degree tolerance the
// last estimate is returned as a silent best effort.
func LastNewMoon(jd float64) float64 {
	k := math.Floor((jd - backwardAnchorJD) / backwardSynodic)
	t := meanNewMoon(k)
	if t > jd {
		t = meanNewMoon(k - 1)
	}

	for i := 0; i < refineMaxSteps; i++ {
		e := signedElongation(t)
		if math.Abs(e) < refineTolerance {
			break
		}
		slope := (signedElongation(t+refineStep) - e) / refineStep
		if slope == 0 {
			break
		}
		t -= e / slope
	}
	return t
}

// signedElongation folds Elongation into (-180, 180] so that values just
// short of a conjunction read as small negatives rather than near 360.
func signedElongation(jd float64) float64 {
	e := Elongation(jd)
	if e > 180 {
		e -= 360
	}
	return e
}
