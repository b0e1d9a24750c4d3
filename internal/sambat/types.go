// Package sambat resolves Gregorian calendar dates into the Nepal Sambat
// lunisolar calendar: month and year numbering, tithi (lunar day)
// resolution, and formatting of the result.
//
// The package is a stateless composition of the pure functions in
// internal/astro. A Converter carries only configuration (reference site,
// epoch constants, leap/skip rule); identical inputs always produce
// identical results.
package sambat

// Paksha is the half of the lunar month a tithi belongs to.
type Paksha string

const (
	PakshaWaxing Paksha = "waxing"
	PakshaWaning Paksha = "waning"
)

// TithiType classifies a day's tithi relative to the previous day.
type TithiType string

const (
	// TithiNormal is the ordinary case: the tithi advanced by one.
	TithiNormal TithiType = "normal"
	// TithiRepeated marks a tithi that spans more than one sunrise.
	TithiRepeated TithiType = "repeated"
	// TithiSkipped marks a day after a tithi began and ended between
	// two sunrises.
	TithiSkipped TithiType = "skipped"
)

// Month is a resolved Nepal Sambat month.
//
// Leap (anala) and Skipped (nhala) are independent booleans in the data
// shape; by construction at most one is expected to be true.
type Month struct {
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Native  string `json:"native"`
	Leap    bool   `json:"leap"`
	Skipped bool   `json:"skipped"`
}

// Tithi is a resolved lunar day.
type Tithi struct {
	Number         int       `json:"number"`         // 1-30 across the lunar month
	AdjustedNumber int       `json:"adjustedNumber"` // 1-15 within the paksha
	Paksha         Paksha    `json:"paksha"`
	Name           string    `json:"name"`
	Type           TithiType `json:"type"`
}

// Date is the immutable aggregate result of a conversion. The longitude
// fields are evaluated at local sunrise of the civil day.
type Date struct {
	Year           int     `json:"year"`
	Month          Month   `json:"month"`
	Tithi          Tithi   `json:"tithi"`
	SolarLongitude float64 `json:"solarLongitude"`
	LunarLongitude float64 `json:"lunarLongitude"`
	Elongation     float64 `json:"elongation"`
	JulianDay      float64 `json:"julianDay"`
}

// AstroDetails is the astronomical slice of a conversion, for callers that
// only need the raw angles.
type AstroDetails struct {
	SolarLongitude float64 `json:"solarLongitude"`
	LunarLongitude float64 `json:"lunarLongitude"`
	Elongation     float64 `json:"elongation"`
}
