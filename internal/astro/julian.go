package astro

import (
	"fmt"
	"math"
)

// InvalidDateError reports a Gregorian calendar date that does not exist,
// such as a month outside 1-12 or February 30. It is the only error the
// engine produces; every downstream function assumes a valid Julian day.
type InvalidDateError struct {
	Year   int
	Month  int
	Day    int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d: %s", e.Year, e.Month, e.Day, e.Reason)
}

// IsLeapYear reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except century years not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month of year.
// It panics if month is outside [1, 12].
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("astro: month %d out of range", month))
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month-1]
}

// ToJulian converts a calendar date to the Julian day at 00:00 UT.
//
// Dates on or after 1582-10-15 are interpreted in the Gregorian calendar
// and receive the Gregorian century correction; dates before the reform
// use the plain Julian form. The ten dates nominally falling between
// 1582-10-05 and 1582-10-14 exist in neither calendar; they are accepted
// without error but the result is historically meaningless.
func ToJulian(year, month, day int) (float64, error) {
	if month < 1 || month > 12 {
		return 0, &InvalidDateError{Year: year, Month: month, Day: day, Reason: "month out of range"}
	}
	if max := DaysInMonth(year, month); day < 1 || day > max {
		return 0, &InvalidDateError{
			Year: year, Month: month, Day: day,
			Reason: fmt.Sprintf("day out of range (month has %d days)", max),
		}
	}

	gregorian := year > 1582 ||
		(year == 1582 && (month > 10 || (month == 10 && day >= 15)))

	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	var b int
	if gregorian {
		a := y / 100
		b = 2 - a + a/4
	}

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day+b) - 1524.5
	return jd, nil
}
