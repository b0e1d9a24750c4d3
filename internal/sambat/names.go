package sambat

import "fmt"

// MonthName pairs the transliterated and native-script names of a month.
type MonthName struct {
	Roman  string
	Native string
}

// monthNames lists the twelve Nepal Sambat months in calendar order.
var monthNames = [12]MonthName{
	{"Kachhalā", "कछला"},
	{"Thinlā", "थिंला"},
	{"Ponhelā", "पोहेला"},
	{"Sillā", "सिल्ला"},
	{"Chillā", "चिल्ला"},
	{"Chaulā", "चौला"},
	{"Bachhalā", "बछला"},
	{"Tachhalā", "तछला"},
	{"Dillā", "दिल्ला"},
	{"Gunlā", "गुंला"},
	{"Yanlā", "ञंला"},
	{"Kaulā", "कौला"},
}

// monthSectorStart holds the solar longitude, in degrees, at which each
// month's thirty-degree sector begins. Each sector ends where the next one
// starts; the last two wrap across 360/0.
var monthSectorStart = [12]float64{
	50.45, 80.45, 110.45, 140.45, 170.45, 200.45,
	230.45, 260.45, 290.45, 320.45, 350.45, 20.45,
}

// tithiNames lists the fifteen tithi names of a paksha in native script.
// The fifteenth entry is the full moon; the waning half overrides it with
// amavasyaName, the new moon day.
var tithiNames = [15]string{
	"प्रतिपदा",
	"द्वितीया",
	"तृतीया",
	"चतुर्थी",
	"पञ्चमी",
	"षष्ठी",
	"सप्तमी",
	"अष्टमी",
	"नवमी",
	"दशमी",
	"एकादशी",
	"द्वादशी",
	"त्रयोदशी",
	"चतुर्दशी",
	"पूर्णिमा",
}

const amavasyaName = "अमावस्या"

// Paksha glyphs used in the readable form: thwa for the waxing half,
// gā for the waning half.
const (
	waxingGlyph = "थ्व"
	waningGlyph = "गा"
)

// monthName returns the name pair for a 1-based month number.
// Out-of-range access is a programming error.
func monthName(number int) MonthName {
	if number < 1 || number > 12 {
		panic(fmt.Sprintf("sambat: month number %d out of range", number))
	}
	return monthNames[number-1]
}

// tithiName returns the native name for a 1-based adjusted tithi number in
// the given paksha, applying the new moon override on the final waning day.
func tithiName(adjusted int, paksha Paksha) string {
	if adjusted < 1 || adjusted > 15 {
		panic(fmt.Sprintf("sambat: adjusted tithi %d out of range", adjusted))
	}
	if adjusted == 15 && paksha == PakshaWaning {
		return amavasyaName
	}
	return tithiNames[adjusted-1]
}
