package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

// AssignTargetHandler godoc
// @Summary Assign a monthly target to a staff member
// @Description Unknown staff names are created with the given role
// @Tags targets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param target body TargetRequest true "Target to assign"
// @Success 201 {object} models.Target
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Staff not found"
// @Router /targets [post]
func AssignTargetHandler(w http.ResponseWriter, r *http.Request) {
	var req TargetRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.CaseType == "" {
		req.CaseType = models.CaseTypeAll
	}

	if errs := validateTarget(req); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, errs)
		return
	}

	staff, err := resolveStaff(req.StaffID, req.StaffName)
	if errors.Is(err, repo.ErrStaffNotFound) && req.StaffID == nil {
		staff, err = staffRepo.Create(models.Staff{
			Name: strings.TrimSpace(req.StaffName),
			Role: strings.TrimSpace(req.Role),
		})
		if err == nil {
			slog.Info("staff created while assigning target", "name", staff.Name, "id", staff.ID)
		}
	}
	if err != nil {
		if errors.Is(err, repo.ErrStaffNotFound) {
			http.Error(w, "staff not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not resolve staff member", http.StatusInternalServerError)
		return
	}

	period, _ := trends.ParseYearMonth(req.Period)
	created, err := targetRepo.Create(models.Target{
		StaffID:     staff.ID,
		CaseType:    req.CaseType,
		Period:      period.String(),
		TargetCount: req.TargetCount,
	})
	if err != nil {
		http.Error(w, "could not assign target", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GetTargetsHandler godoc
// @Summary List targets
// @Tags targets
// @Produce json
// @Security BearerAuth
// @Param staff_id query int false "Staff ID"
// @Param period query string false "Period (YYYY-MM)"
// @Success 200 {array} models.Target
// @Failure 400 {string} string "Invalid query"
// @Router /targets [get]
func GetTargetsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	staffID, err := parseIntPtr(q.Get("staff_id"))
	if err != nil {
		http.Error(w, "invalid staff_id format", http.StatusBadRequest)
		return
	}

	period := q.Get("period")
	if period != "" {
		if _, err := trends.ParseYearMonth(period); err != nil {
			http.Error(w, "period must be YYYY-MM", http.StatusBadRequest)
			return
		}
	}

	targets, err := targetRepo.Find(repo.TargetFilter{StaffID: staffID, Period: period})
	if err != nil {
		http.Error(w, "could not fetch targets", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, targets)
}
