package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/auth"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

func GetRoleFromContext(r *http.Request) (string, error) {
	authorization := r.Header.Get("Authorization")

	_, claims, err := auth.TokenClaims(authorization)
	if err != nil {
		return "", err
	}

	if role, ok := claims["role"].(string); ok {
		return role, nil
	}
	return "", nil
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseBound reads a since/until query value. Month and date forms expand to
// the first (since) or last (until) instant they cover.
func parseBound(s string, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	// Query strings turn the '+' of a timezone offset into a space.
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		if upper {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return &t, nil
	}
	if m, err := trends.ParseYearMonth(s); err == nil {
		t := m.Start()
		if upper {
			t = m.End()
		}
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q", s)
}

// parseSurgeryFilter reads the filters shared by the list, trends and export
// endpoints. The returned message is safe to show to the client.
func parseSurgeryFilter(r *http.Request) (repo.SurgeryFilter, string) {
	q := r.URL.Query()
	var (
		f   repo.SurgeryFilter
		err error
	)

	ints := []struct {
		name string
		dst  **int
	}{
		{"staff_id", &f.StaffID},
		{"hospital_id", &f.HospitalID},
		{"region_id", &f.RegionID},
		{"offset", &f.Offset},
		{"limit", &f.Limit},
	}
	for _, p := range ints {
		if *p.dst, err = parseIntPtr(q.Get(p.name)); err != nil {
			return f, "invalid " + p.name + " format"
		}
	}
	if f.Limit != nil && *f.Limit <= 0 {
		return f, "limit must be greater than zero"
	}
	if f.Offset != nil && *f.Offset < 0 {
		return f, "offset must be zero or positive"
	}

	if t := q.Get("type"); t != "" {
		if !models.IsSurgeryType(t) {
			return f, "unknown surgery type"
		}
		f.SurgeryType = t
	}

	if f.Since, err = parseBound(q.Get("since"), false); err != nil {
		return f, "invalid since date format"
	}
	if f.Until, err = parseBound(q.Get("until"), true); err != nil {
		return f, "invalid until date format"
	}
	if f.Since != nil && f.Until != nil && f.Until.Before(*f.Since) {
		return f, "until must not be before since"
	}
	return f, ""
}

// invalidateTrends drops cached trend responses after a write.
func invalidateTrends(r *http.Request) {
	if err := trendCache.Invalidate(r.Context()); err != nil {
		slog.Warn("failed to invalidate trend cache", "error", err)
	}
}
