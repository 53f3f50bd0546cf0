package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/cache"
	"github.com/rogerio-castellano/surgery-tracker/internal/metrics"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

// parseWindow reads the moving-average window, falling back to the default.
func parseWindow(s string) (int, string) {
	if s == "" {
		return defaultWindow, ""
	}
	window, err := strconv.Atoi(s)
	if err != nil || window < 1 {
		return 0, "window must be a positive integer"
	}
	if window > maxWindow {
		return 0, "window must not exceed " + strconv.Itoa(maxWindow)
	}
	return window, ""
}

func toTrendResponse(rep trends.Report) TrendResponse {
	resp := TrendResponse{
		Window:        rep.Window,
		Monthly:       make([]Point, len(rep.Monthly)),
		MovingAverage: make([]Point, len(rep.MovingAverage)),
		Forecast: ForecastResponse{
			Label:         rep.Forecast.Month.String(),
			Value:         rep.Forecast.PredictedTotal,
			Slope:         rep.Forecast.Slope,
			Intercept:     rep.Forecast.Intercept,
			LowConfidence: rep.Forecast.LowConfidence(),
		},
	}
	if rep.Forecast.Warning != nil {
		resp.Forecast.Warning = rep.Forecast.Warning.Error()
	}
	for i, m := range rep.Monthly {
		resp.Monthly[i] = Point{Label: m.Month.String(), Value: float64(m.Total)}
	}
	for i, a := range rep.MovingAverage {
		resp.MovingAverage[i] = Point{Label: a.Month.String(), Value: a.Average}
	}
	return resp
}

// GetTrendsHandler godoc
// @Summary Monthly totals, moving average and next-month forecast
// @Tags trends
// @Produce json
// @Security BearerAuth
// @Param staff_id query int false "Staff ID"
// @Param hospital_id query int false "Hospital ID"
// @Param region_id query int false "Region ID"
// @Param type query string false "Surgery type"
// @Param since query string false "From (YYYY-MM, YYYY-MM-DD or RFC3339)"
// @Param until query string false "Until (YYYY-MM, YYYY-MM-DD or RFC3339)"
// @Param window query int false "Moving average window in months"
// @Success 200 {object} TrendResponse
// @Failure 400 {string} string "Invalid query"
// @Failure 422 {string} string "not enough data"
// @Router /trends [get]
func GetTrendsHandler(w http.ResponseWriter, r *http.Request) {
	filter, msg := parseSurgeryFilter(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	filter = filter.Unpaged()

	window, msg := parseWindow(r.URL.Query().Get("window"))
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	key := cache.BuildKey("trends", map[string]string{
		"staff_id":    q.Get("staff_id"),
		"hospital_id": q.Get("hospital_id"),
		"region_id":   q.Get("region_id"),
		"type":        q.Get("type"),
		"since":       q.Get("since"),
		"until":       q.Get("until"),
		"window":      strconv.Itoa(window),
	})

	// The generation is read before the records so a write landing during the
	// computation orphans the stored result.
	var cached TrendResponse
	gen, err := trendCache.Get(r.Context(), key, &cached)
	if err == nil {
		respondJSON(w, http.StatusOK, cached)
		return
	}
	cacheable := errors.Is(err, cache.ErrCacheMiss)
	if !cacheable {
		metrics.RecordCacheError()
		slog.Warn("trend cache lookup failed", "error", err)
	}

	records, _, err := surgeryRepo.Find(filter)
	if err != nil {
		slog.Error("could not retrieve surgeries for trends", "error", err)
		http.Error(w, "could not retrieve surgeries", http.StatusInternalServerError)
		return
	}

	start := time.Now()
	rep, err := trends.Build(records, window)
	switch {
	case errors.Is(err, trends.ErrInsufficientData):
		metrics.RecordTrendInsufficientData()
		http.Error(w, "not enough data", http.StatusUnprocessableEntity)
		return
	case errors.Is(err, trends.ErrInvalidWindow):
		http.Error(w, "window must be a positive integer", http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, "could not compute trends", http.StatusInternalServerError)
		return
	}
	metrics.RecordTrendComputation(time.Since(start).Seconds(), rep.Forecast.LowConfidence())

	resp := toTrendResponse(rep)
	if cacheable {
		if err := trendCache.Set(r.Context(), gen, key, resp); err != nil {
			metrics.RecordCacheError()
			slog.Warn("trend cache store failed", "error", err)
		}
	}

	respondJSON(w, http.StatusOK, resp)
}
