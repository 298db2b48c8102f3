package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/calverse/calendars-api/internal/calendar"
	"github.com/calverse/calendars-api/internal/config"
	"github.com/calverse/calendars-api/internal/database"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger

	// now supplies the current time; overridable in tests.
	now func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Conversion Endpoints
// =============================================================================

// ConversionResult is the response body for the convert endpoints.
type ConversionResult struct {
	Date        string          `json:"date"`
	Weekday     string          `json:"weekday"`
	Season      calendar.Season `json:"season"`
	LeapYear    bool            `json:"leap_year"`
	DaysInYear  int             `json:"days_in_year"`
	Hebrew      string          `json:"hebrew"`
	Islamic     string          `json:"islamic"`
	Hindu       string          `json:"hindu"`
	Approximate bool            `json:"approximate"`
}

// convert builds the conversion result for a date.
func convert(d calendar.Date) ConversionResult {
	return ConversionResult{
		Date:        d.String(),
		Weekday:     d.Weekday().String(),
		Season:      calendar.SeasonOf(d),
		LeapYear:    calendar.IsGregorianLeapYear(d.Year),
		DaysInYear:  calendar.DaysInGregorianYear(d.Year),
		Hebrew:      calendar.ToHebrew(d),
		Islamic:     calendar.ToIslamic(d),
		Hindu:       calendar.ToHindu(d),
		Approximate: true,
	}
}

// ConvertToday handles GET /api/v1/convert/today
func (h *Handlers) ConvertToday(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, convert(calendar.DateOf(h.now())))
}

// ConvertDate handles GET /api/v1/convert/{date}
func (h *Handlers) ConvertDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	WriteSuccess(w, convert(date))
}

// HolidayEstimates is the response body for the holidays endpoint.
// Every value is a best-effort approximation, not an authoritative date.
type HolidayEstimates struct {
	Year         int    `json:"year"`
	Easter       string `json:"easter"`
	RamadanStart string `json:"ramadan_start"`
	Diwali       string `json:"diwali"`
	Holi         string `json:"holi"`
	Navratri     string `json:"navratri"`
	Approximate  bool   `json:"approximate"`
}

// GetHolidays handles GET /api/v1/holidays/{year}
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, HolidayEstimates{
		Year:         year,
		Easter:       calendar.Easter(year),
		RamadanStart: calendar.RamadanStart(year),
		Diwali:       calendar.Diwali(year),
		Holi:         calendar.Holi(year),
		Navratri:     calendar.Navratri(year),
		Approximate:  true,
	})
}

// LeapInfo is the response body for the leap endpoint.
type LeapInfo struct {
	Year                 int  `json:"year"`
	GregorianLeap        bool `json:"gregorian_leap"`
	GregorianDays        int  `json:"gregorian_days"`
	HebrewLeap           bool `json:"hebrew_leap"`
	HebrewMonths         int  `json:"hebrew_months"`
	IslamicLeap          bool `json:"islamic_leap"`
	IslamicDays          int  `json:"islamic_days"`
	JulianGregorianDrift int  `json:"julian_gregorian_drift"`
}

// GetLeapInfo handles GET /api/v1/leap/{year}
func (h *Handlers) GetLeapInfo(w http.ResponseWriter, r *http.Request) {
	year, err := parseYearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	WriteSuccess(w, LeapInfo{
		Year:                 year,
		GregorianLeap:        calendar.IsGregorianLeapYear(year),
		GregorianDays:        calendar.DaysInGregorianYear(year),
		HebrewLeap:           calendar.IsHebrewLeapYear(year),
		HebrewMonths:         calendar.MonthsInHebrewYear(year),
		IslamicLeap:          calendar.IsIslamicLeapYear(year),
		IslamicDays:          calendar.DaysInIslamicYear(year),
		JulianGregorianDrift: calendar.JulianGregorianOffset(year),
	})
}

// parseYearParam extracts and validates the {year} path parameter.
func parseYearParam(r *http.Request) (int, error) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: must be an integer", yearStr)
	}
	return year, nil
}

// =============================================================================
// Progress Endpoints
// =============================================================================

// GetProgress handles GET /api/v1/progress
func (h *Handlers) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	limit := 50
	offset := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		if l, err := strconv.Atoi(s); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if s := r.URL.Query().Get("offset"); s != "" {
		if o, err := strconv.Atoi(s); err == nil && o >= 0 {
			offset = o
		}
	}

	progress, err := h.db.GetProgressByUser(ctx, userID, limit, offset)
	if err != nil {
		h.logger.Error("failed to get progress", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve progress")
		return
	}

	WriteSuccess(w, progress)
}

// createProgressRequest is the body for POST /api/v1/progress.
type createProgressRequest struct {
	Module string  `json:"module"`
	Notes  *string `json:"notes"`
}

// CreateProgress handles POST /api/v1/progress
func (h *Handlers) CreateProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	var req createProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Invalid JSON body")
		return
	}

	module := database.Module(req.Module)
	if !module.IsValid() {
		WriteBadRequest(w, fmt.Sprintf("Unknown module %q", req.Module))
		return
	}

	progress, err := h.db.CreateProgress(ctx, userID, module, req.Notes)
	if err != nil {
		if database.IsDuplicate(err) {
			WriteConflict(w, fmt.Sprintf("Module %q already completed", req.Module))
			return
		}
		h.logger.Error("failed to create progress", slog.Any("error", err))
		WriteInternalError(w, "Failed to record progress")
		return
	}

	WriteCreated(w, progress)
}

// DeleteProgress handles DELETE /api/v1/progress/{id}
func (h *Handlers) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid progress ID %q", idStr))
		return
	}

	if err := h.db.DeleteProgress(ctx, id, userID); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Progress record not found")
			return
		}
		h.logger.Error("failed to delete progress", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete progress")
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"})
}

// GetProgressStats handles GET /api/v1/progress/stats
func (h *Handlers) GetProgressStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(r)

	stats, err := h.db.GetProgressStats(ctx, userID)
	if err != nil {
		h.logger.Error("failed to get progress stats", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve progress stats")
		return
	}

	WriteSuccess(w, stats)
}
