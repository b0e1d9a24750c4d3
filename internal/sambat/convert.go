package sambat

import "github.com/rmanandhar/nepalsambat-api/internal/astro"

// Converter is the public adapter over the conversion engine. The zero
// options give the reference configuration: Kathmandu sunrise geography,
// the Kaliyuga epoch constants and the default leap/skip rule.
type Converter struct {
	site  astro.Site
	epoch Epoch
	rule  LeapSkipRule
}

// Option overrides one piece of Converter configuration.
type Option func(*Converter)

// WithSite substitutes the sunrise reference site.
func WithSite(site astro.Site) Option {
	return func(c *Converter) { c.site = site }
}

// WithEpoch substitutes the year-numbering epoch constants.
func WithEpoch(epoch Epoch) Option {
	return func(c *Converter) { c.epoch = epoch }
}

// WithRule substitutes the leap/skip month classification rule.
func WithRule(rule LeapSkipRule) Option {
	return func(c *Converter) { c.rule = rule }
}

// New returns a Converter with the reference configuration, modified by
// any options.
func New(opts ...Option) *Converter {
	c := &Converter{
		site:  astro.Kathmandu(),
		epoch: DefaultEpoch(),
		rule:  DefaultRule{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertDate converts a Gregorian calendar date to its Nepal Sambat
// representation. It returns *astro.InvalidDateError for dates that do not
// exist in the Gregorian calendar.
func (c *Converter) ConvertDate(year, month, day int) (Date, error) {
	jd, err := astro.ToJulian(year, month, day)
	if err != nil {
		return Date{}, err
	}

	nsMonth := c.resolveMonth(jd)
	nsYear := c.resolveYear(jd, nsMonth.Number)
	tithi := c.resolveTithi(jd)

	sunrise := astro.Sunrise(jd, c.site)
	solar := astro.SolarLongitude(sunrise)
	lunar := astro.LunarLongitude(sunrise)

	return Date{
		Year:           nsYear,
		Month:          nsMonth,
		Tithi:          tithi,
		SolarLongitude: solar,
		LunarLongitude: lunar,
		Elongation:     astro.Elongation(sunrise),
		JulianDay:      jd,
	}, nil
}

// ConvertYear returns the Nepal Sambat year containing the first day of
// the given Gregorian month.
func (c *Converter) ConvertYear(year, month int) (int, error) {
	jd, err := astro.ToJulian(year, month, 1)
	if err != nil {
		return 0, err
	}
	nsMonth := c.resolveMonth(jd)
	return c.resolveYear(jd, nsMonth.Number), nil
}

// ConvertMonth resolves only the Nepal Sambat month for a Gregorian date.
func (c *Converter) ConvertMonth(year, month, day int) (Month, error) {
	jd, err := astro.ToJulian(year, month, day)
	if err != nil {
		return Month{}, err
	}
	return c.resolveMonth(jd), nil
}

// ConvertTithi resolves only the tithi for a Gregorian date.
func (c *Converter) ConvertTithi(year, month, day int) (Tithi, error) {
	jd, err := astro.ToJulian(year, month, day)
	if err != nil {
		return Tithi{}, err
	}
	return c.resolveTithi(jd), nil
}

// AstronomicalDetails returns the solar and lunar longitudes and their
// elongation at local sunrise of the given Gregorian date.
func (c *Converter) AstronomicalDetails(year, month, day int) (AstroDetails, error) {
	jd, err := astro.ToJulian(year, month, day)
	if err != nil {
		return AstroDetails{}, err
	}
	sunrise := astro.Sunrise(jd, c.site)
	return AstroDetails{
		SolarLongitude: astro.SolarLongitude(sunrise),
		LunarLongitude: astro.LunarLongitude(sunrise),
		Elongation:     astro.Elongation(sunrise),
	}, nil
}

// defaultConverter backs the package-level convenience functions.
var defaultConverter = New()

// ConvertDate converts a Gregorian date using the reference configuration.
func ConvertDate(year, month, day int) (Date, error) {
	return defaultConverter.ConvertDate(year, month, day)
}

// ConvertYear resolves the Nepal Sambat year using the reference
// configuration.
func ConvertYear(year, month int) (int, error) {
	return defaultConverter.ConvertYear(year, month)
}

// ConvertMonth resolves the Nepal Sambat month using the reference
// configuration.
func ConvertMonth(year, month, day int) (Month, error) {
	return defaultConverter.ConvertMonth(year, month, day)
}

// ConvertTithi resolves the tithi using the reference configuration.
func ConvertTithi(year, month, day int) (Tithi, error) {
	return defaultConverter.ConvertTithi(year, month, day)
}

// AstronomicalDetails returns sunrise longitudes using the reference
// configuration.
func AstronomicalDetails(year, month, day int) (AstroDetails, error) {
	return defaultConverter.AstronomicalDetails(year, month, day)
}
