package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/http/router"
	"github.com/rogerio-castellano/surgery-tracker/internal/report"
	"github.com/xuri/excelize/v2"
)

func TestExportReportHandler(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 3)
	addSurgery(drParkID, stMaryID, "trauma", 2024, time.March, 2)

	t.Run("CSV by month", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/reports/export?format=csv", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected text/csv, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "surgeries_by_month.csv") {
			t.Errorf("unexpected Content-Disposition %q", cd)
		}

		want := "month,total\n2024-01,3\n2024-02,0\n2024-03,2\n"
		if w.Body.String() != want {
			t.Errorf("expected body %q, got %q", want, w.Body.String())
		}
	})

	t.Run("JSON by staff", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/reports/export?format=json&group=staff", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var rows []report.Row
		if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %v", rows)
		}
		if rows[0].Label != "Dr. Lee" || rows[0].Value != 3 {
			t.Errorf("unexpected first row %v", rows[0])
		}
		if rows[1].Label != "Dr. Park" || rows[1].Value != 2 {
			t.Errorf("unexpected second row %v", rows[1])
		}
	})

	t.Run("JSON by region with a filter", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/reports/export?format=json&group=region&type=trauma", nil, token)
		var rows []report.Row
		_ = json.NewDecoder(w.Body).Decode(&rows)
		if len(rows) != 1 || rows[0].Label != "South" || rows[0].Value != 2 {
			t.Errorf("expected a single South row of 2, got %v", rows)
		}
	})

	t.Run("XLSX by hospital", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/reports/export?format=xlsx&group=hospital", nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != report.XLSX.ContentType() {
			t.Errorf("unexpected content type %q", ct)
		}

		f, err := excelize.OpenReader(w.Body)
		if err != nil {
			t.Fatalf("response is not a workbook: %v", err)
		}
		defer f.Close()

		rows, err := f.GetRows("Report")
		if err != nil {
			t.Fatalf("could not read sheet: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header and 2 rows, got %v", rows)
		}
		if rows[1][0] != "General" || rows[2][0] != "St. Mary" {
			t.Errorf("unexpected labels %v", rows)
		}
	})

	bad := []struct {
		name  string
		query string
	}{
		{"Unsupported format", "?format=pdf"},
		{"Missing format", ""},
		{"Unknown group", "?format=csv&group=surgeon"},
		{"Bad filter", "?format=csv&since=yesterday"},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/reports/export"+tt.query, nil, token)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}
