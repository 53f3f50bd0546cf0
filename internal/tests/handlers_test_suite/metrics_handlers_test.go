package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	handler "github.com/rogerio-castellano/surgery-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/router"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

func TestDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drLeeID, generalID, "spine", 2024, time.January, 3)
	addSurgery(drLeeID, stMaryID, "trauma", 2024, time.February, 2)
	addSurgery(drParkID, stMaryID, "tumor", 2024, time.February, 4)

	w := doRequest(r, http.MethodGet, "/metrics/dashboard", nil, staffToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&metrics); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}

	if metrics.TotalSurgeries != 9 {
		t.Errorf("expected 9 surgeries, got %d", metrics.TotalSurgeries)
	}
	if metrics.LoggedEntries != 3 {
		t.Errorf("expected 3 logged entries, got %d", metrics.LoggedEntries)
	}
	staff, _ := staffRepo.GetAll()
	if metrics.StaffCount != len(staff) {
		t.Errorf("expected %d staff, got %d", len(staff), metrics.StaffCount)
	}
	if metrics.HospitalCount != 2 {
		t.Errorf("expected 2 hospitals, got %d", metrics.HospitalCount)
	}
	if metrics.BusiestHospital.Name != "St. Mary" || metrics.BusiestHospital.SurgeryCount != 6 {
		t.Errorf("expected St. Mary with 6, got %+v", metrics.BusiestHospital)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	r := router.NewRouter()

	w := logSurgery(r, handler.SurgeryRequest{
		StaffID:     intPtr(drLeeID),
		HospitalID:  generalID,
		SurgeryType: "spine",
		PerformedAt: "2024-01",
		Count:       2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/metrics", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	body := w.Body.String()
	for _, name := range []string{
		"surgery_records_logged_total",
		"surgery_procedures_logged_total",
		"surgery_http_requests_total",
	} {
		if !strings.Contains(body, name) {
			t.Errorf("expected %s in exposition", name)
		}
	}
}

func TestHealthHandler(t *testing.T) {
	r := router.NewRouter()

	w := doRequest(r, http.MethodGet, "/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.HealthResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Storage != "memory" {
		t.Errorf("unexpected health %+v", resp)
	}
}
