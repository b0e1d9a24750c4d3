package sambat

import (
	"fmt"
	"math"
)

// Formatted is the rendered form of a converted date.
type Formatted struct {
	Numerical string `json:"numerical"`
	Readable  string `json:"readable"`
}

// Format renders a Date as the fixed-pattern numerical code
//
//	{year}.{month}{monthSuffix}{paksha}.{tithi:02d}{tithiType}{weekday}
//
// and as a human-readable native string. The month suffix is 3 for a leap
// month, 4 for a skipped month, otherwise 0; the paksha digit is 1 waxing,
// 2 waning; the tithi type digit is 0 normal, 8 repeated, 9 skipped; the
// weekday digit is floor(JD+1.5) mod 7 with a zero remainder mapped to 7.
func Format(d Date) Formatted {
	monthSuffix := "0"
	switch {
	case d.Month.Leap:
		monthSuffix = "3"
	case d.Month.Skipped:
		monthSuffix = "4"
	}

	pakshaDigit := "1"
	pakshaGlyph := waxingGlyph
	if d.Tithi.Paksha == PakshaWaning {
		pakshaDigit = "2"
		pakshaGlyph = waningGlyph
	}

	typeDigit := "0"
	switch d.Tithi.Type {
	case TithiRepeated:
		typeDigit = "8"
	case TithiSkipped:
		typeDigit = "9"
	}

	weekday := int(math.Mod(math.Floor(d.JulianDay+1.5), 7))
	if weekday == 0 {
		weekday = 7
	}

	numerical := fmt.Sprintf("%d.%d%s%s.%02d%s%d",
		d.Year, d.Month.Number, monthSuffix, pakshaDigit,
		d.Tithi.AdjustedNumber, typeDigit, weekday)

	readable := fmt.Sprintf("%d %s %s %s %d",
		d.Year, d.Month.Native, pakshaGlyph,
		d.Tithi.Name, d.Tithi.AdjustedNumber)

	return Formatted{Numerical: numerical, Readable: readable}
}
