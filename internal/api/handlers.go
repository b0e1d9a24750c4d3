package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rmanandhar/nepalsambat-api/internal/astro"
	"github.com/rmanandhar/nepalsambat-api/internal/config"
	"github.com/rmanandhar/nepalsambat-api/internal/sambat"
)

// maxRangeDays bounds the batch endpoint to one Gregorian year per call.
const maxRangeDays = 366

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	conv   *sambat.Converter
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(conv *sambat.Converter, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// conversion is the payload for a single converted date.
type conversion struct {
	Gregorian string           `json:"gregorian"`
	Date      sambat.Date      `json:"date"`
	Formatted sambat.Formatted `json:"formatted"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// ConvertToday handles GET /api/v1/convert/today
func (h *Handlers) ConvertToday(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	h.writeConversion(w, now)
}

// ConvertDate handles GET /api/v1/convert/{date} with date as YYYY-MM-DD.
func (h *Handlers) ConvertDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	h.writeConversion(w, date)
}

// ConvertRange handles GET /api/v1/convert/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) ConvertRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}

	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if start.After(end) {
		WriteBadRequest(w, "start must not be after end")
		return
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		WriteBadRequest(w, fmt.Sprintf("Range is limited to %d days", maxRangeDays))
		return
	}

	var results []conversion
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		c, err := h.convert(d)
		if err != nil {
			h.logger.Error("range conversion failed",
				slog.String("date", d.Format("2006-01-02")),
				slog.Any("error", err))
			WriteInternalError(w, "Conversion failed")
			return
		}
		results = append(results, c)
	}

	WriteSuccess(w, results)
}

// AstroDetails handles GET /api/v1/astro/{date}
func (h *Handlers) AstroDetails(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	details, err := h.conv.AstronomicalDetails(date.Year(), int(date.Month()), date.Day())
	if err != nil {
		h.writeConversionError(w, err)
		return
	}

	WriteSuccess(w, details)
}

// writeConversion converts one date and writes the full payload.
func (h *Handlers) writeConversion(w http.ResponseWriter, date time.Time) {
	c, err := h.convert(date)
	if err != nil {
		h.writeConversionError(w, err)
		return
	}
	WriteSuccess(w, c)
}

func (h *Handlers) convert(date time.Time) (conversion, error) {
	d, err := h.conv.ConvertDate(date.Year(), int(date.Month()), date.Day())
	if err != nil {
		return conversion{}, err
	}
	return conversion{
		Gregorian: date.Format("2006-01-02"),
		Date:      d,
		Formatted: sambat.Format(d),
	}, nil
}

// writeConversionError maps engine errors onto the response envelope.
// An InvalidDateError is the caller's fault; anything else is ours.
func (h *Handlers) writeConversionError(w http.ResponseWriter, err error) {
	var invalid *astro.InvalidDateError
	if errors.As(err, &invalid) {
		WriteBadRequest(w, invalid.Error())
		return
	}
	h.logger.Error("conversion failed", slog.Any("error", err))
	WriteInternalError(w, "Conversion failed")
}
