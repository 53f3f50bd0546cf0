package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/surgery-tracker/internal/metrics"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

const staffNotFoundMessage = "staff not found, ask an admin to add them first"

// buildSurgery resolves the references of a validated request.
func buildSurgery(req SurgeryRequest) (models.Surgery, error) {
	staff, err := resolveStaff(req.StaffID, req.StaffName)
	if err != nil {
		return models.Surgery{}, err
	}

	hospital, err := facilityRepo.GetHospitalByID(req.HospitalID)
	if err != nil {
		return models.Surgery{}, err
	}

	performedAt, _ := parsePerformedAt(req.PerformedAt)
	return models.Surgery{
		StaffID:         staff.ID,
		HospitalID:      hospital.ID,
		RegionID:        hospital.RegionID,
		SurgeryType:     req.SurgeryType,
		PerformedAt:     performedAt,
		Count:           req.Count,
		PatientRef:      strings.TrimSpace(req.PatientRef),
		DurationMinutes: req.DurationMinutes,
		Outcome:         strings.TrimSpace(req.Outcome),
	}, nil
}

// LogSurgeryHandler godoc
// @Summary Log a surgery
// @Description Records a surgery count for a staff member at a hospital
// @Tags surgeries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param surgery body SurgeryRequest true "Surgery to log"
// @Success 201 {object} models.Surgery
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Staff not found"
// @Router /surgeries [post]
func LogSurgeryHandler(w http.ResponseWriter, r *http.Request) {
	var req SurgeryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateSurgery(req); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, errs)
		return
	}

	surgery, err := buildSurgery(req)
	switch {
	case errors.Is(err, repo.ErrStaffNotFound):
		http.Error(w, staffNotFoundMessage, http.StatusNotFound)
		return
	case errors.Is(err, repo.ErrHospitalNotFound):
		respondJSON(w, http.StatusBadRequest, []ValidationError{{Field: "hospital_id", Description: "unknown hospital"}})
		return
	case err != nil:
		http.Error(w, "could not log surgery", http.StatusInternalServerError)
		return
	}

	created, err := surgeryRepo.Create(surgery)
	if err != nil {
		slog.Error("could not log surgery", "error", err)
		http.Error(w, "could not log surgery", http.StatusInternalServerError)
		return
	}
	metrics.RecordSurgeryLogged(created.Count)
	invalidateTrends(r)

	respondJSON(w, http.StatusCreated, created)
}

// GetSurgeriesHandler godoc
// @Summary List logged surgeries
// @Tags surgeries
// @Produce json
// @Security BearerAuth
// @Param staff_id query int false "Staff ID"
// @Param hospital_id query int false "Hospital ID"
// @Param region_id query int false "Region ID"
// @Param type query string false "Surgery type"
// @Param since query string false "From (YYYY-MM, YYYY-MM-DD or RFC3339)"
// @Param until query string false "Until (YYYY-MM, YYYY-MM-DD or RFC3339)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} SurgeriesSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /surgeries [get]
func GetSurgeriesHandler(w http.ResponseWriter, r *http.Request) {
	filter, msg := parseSurgeryFilter(r)
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	surgeries, total, err := surgeryRepo.Find(filter)
	if err != nil {
		slog.Error("could not retrieve surgeries", "error", err)
		http.Error(w, "could not retrieve surgeries", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, SurgeriesSearchResult{
		Data: surgeries,
		Meta: Meta{TotalCount: total},
	})
}

// DeleteSurgeryHandler godoc
// @Summary Delete a logged surgery
// @Tags surgeries
// @Security BearerAuth
// @Param id path int true "Surgery ID"
// @Success 204
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /surgeries/{id} [delete]
func DeleteSurgeryHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid surgery ID", http.StatusBadRequest)
		return
	}

	if err := surgeryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrSurgeryNotFound) {
			http.Error(w, "surgery not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete surgery", http.StatusInternalServerError)
		return
	}
	invalidateTrends(r)

	w.WriteHeader(http.StatusNoContent)
}
