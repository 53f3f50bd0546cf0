package handlers_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/router"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

func TestSurgeryLifecycle(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	w := doRequest(r, http.MethodPost, "/surgeries", handlers.SurgeryRequest{
		StaffName:       drLee.Name,
		HospitalID:      stMary.ID,
		SurgeryType:     "arthroplasty",
		PerformedAt:     "2024-02-03",
		Count:           2,
		PatientRef:      "MRN-001",
		DurationMinutes: intPtr(120),
		Outcome:         "discharged",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Surgery
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if created.RegionID != stMary.RegionID {
		t.Errorf("expected region %d, got %d", stMary.RegionID, created.RegionID)
	}

	stored, err := surgeryRepo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("expected surgery to be stored: %v", err)
	}
	if stored.DurationMinutes == nil || *stored.DurationMinutes != 120 {
		t.Errorf("expected duration 120, got %v", stored.DurationMinutes)
	}
	if stored.PatientRef != "MRN-001" || stored.Outcome != "discharged" {
		t.Errorf("optional fields not stored: %+v", stored)
	}

	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/surgeries/%d", created.ID), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if _, err := surgeryRepo.GetByID(created.ID); err == nil {
		t.Error("expected surgery to be deleted")
	}
}

func TestSurgeryFilters(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drLee, general, "spine", 2024, time.January, 3)
	addSurgery(drLee, stMary, "trauma", 2024, time.February, 1)
	addSurgery(drPark, general, "spine", 2024, time.March, 2)
	addSurgery(drPark, stMary, "tumor", 2024, time.April, 4)

	tests := []struct {
		name      string
		filter    repo.SurgeryFilter
		expectLen int
	}{
		{"All", repo.SurgeryFilter{}, 4},
		{"By staff", repo.SurgeryFilter{StaffID: &drLee.ID}, 2},
		{"By region", repo.SurgeryFilter{RegionID: &general.RegionID}, 2},
		{"By type", repo.SurgeryFilter{SurgeryType: "spine"}, 2},
		{"Paged", repo.SurgeryFilter{Offset: intPtr(1), Limit: intPtr(2)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := surgeryRepo.Find(tt.filter)
			if err != nil {
				t.Fatalf("find failed: %v", err)
			}
			if len(got) != tt.expectLen {
				t.Errorf("expected %d records, got %d", tt.expectLen, len(got))
			}
			if tt.name == "Paged" && total != 4 {
				t.Errorf("expected total 4, got %d", total)
			}
		})
	}

	t.Run("Date range through the API", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/surgeries?since=2024-02&until=2024-03-31", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handlers.SurgeriesSearchResult
		_ = json.NewDecoder(w.Body).Decode(&resp)
		if resp.Meta.TotalCount != 2 {
			t.Errorf("expected 2 records, got %d", resp.Meta.TotalCount)
		}
	})
}

func TestTrendsOverPostgres(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	w := doRequest(r, http.MethodGet, "/trends", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on an empty store, got %d", w.Code)
	}

	addSurgery(drLee, general, "spine", 2024, time.January, 10)
	addSurgery(drPark, stMary, "spine", 2024, time.February, 20)
	addSurgery(drLee, general, "trauma", 2024, time.March, 30)

	w = doRequest(r, http.MethodGet, "/trends?type=spine&window=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handlers.TrendResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.Monthly) != 2 || resp.Monthly[1].Value != 20 {
		t.Fatalf("unexpected monthly series %v", resp.Monthly)
	}
	if len(resp.MovingAverage) != 1 || resp.MovingAverage[0].Value != 15 {
		t.Errorf("unexpected moving average %v", resp.MovingAverage)
	}
	if resp.Forecast.Label != "2024-03" || math.Abs(resp.Forecast.Value-30) > 1e-9 {
		t.Errorf("expected 30 for 2024-03, got %v for %s", resp.Forecast.Value, resp.Forecast.Label)
	}
}

func TestImportOverPostgres(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	csvData := fmt.Sprintf(`staff_name,hospital_id,surgery_type,performed_at,count
Dr. Lee,%d,spine,2024-01-12,2
Dr. Nobody,%d,spine,2024-01-12,1
Dr. Park,%d,tumor,2024-02,0`, general.ID, general.ID, stMary.ID)

	body, contentType := multipartCSV(csvData, "surgeries.csv")
	req := httptest.NewRequest(http.MethodPost, "/surgeries/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handlers.ImportSurgeriesResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ImportedCount != 1 {
		t.Errorf("expected 1 imported row, got %d", resp.ImportedCount)
	}
	if len(resp.Errors) != 2 {
		t.Errorf("expected 2 errors, got %v", resp.Errors)
	}

	if _, total, _ := surgeryRepo.Find(repo.SurgeryFilter{}); total != 1 {
		t.Errorf("expected 1 stored record, got %d", total)
	}
}

func TestDashboardMetricsOverPostgres(t *testing.T) {
	t.Cleanup(clearAllSurgeries)
	clearAllSurgeries()
	r := router.NewRouter()

	addSurgery(drLee, general, "spine", 2024, time.January, 3)
	addSurgery(drPark, stMary, "spine", 2024, time.January, 5)

	w := doRequest(r, http.MethodGet, "/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if m.TotalSurgeries != 8 || m.LoggedEntries != 2 {
		t.Errorf("unexpected totals %+v", m)
	}
	if m.BusiestHospital.Name != stMary.Name {
		t.Errorf("expected %s to be busiest, got %s", stMary.Name, m.BusiestHospital.Name)
	}
}
