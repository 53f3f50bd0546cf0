package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

// GetStaffHandler godoc
// @Summary List staff members
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Staff
// @Failure 500 {string} string "Internal error"
// @Router /staff [get]
func GetStaffHandler(w http.ResponseWriter, r *http.Request) {
	staff, err := staffRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch staff", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, staff)
}

// CreateStaffHandler godoc
// @Summary Add a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staff body StaffRequest true "Staff member"
// @Success 201 {object} models.Staff
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "Staff exists"
// @Router /staff [post]
func CreateStaffHandler(w http.ResponseWriter, r *http.Request) {
	var req StaffRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateStaff(req); len(errs) > 0 {
		respondJSON(w, http.StatusBadRequest, errs)
		return
	}

	created, err := staffRepo.Create(models.Staff{Name: strings.TrimSpace(req.Name), Role: strings.TrimSpace(req.Role)})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "staff member already exists", http.StatusConflict)
			return
		}
		http.Error(w, "could not create staff member", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetHospitalsHandler godoc
// @Summary List hospitals
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Hospital
// @Router /hospitals [get]
func GetHospitalsHandler(w http.ResponseWriter, r *http.Request) {
	hospitals, err := facilityRepo.GetHospitals()
	if err != nil {
		http.Error(w, "could not fetch hospitals", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, hospitals)
}

// GetRegionsHandler godoc
// @Summary List regions
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Region
// @Router /regions [get]
func GetRegionsHandler(w http.ResponseWriter, r *http.Request) {
	regions, err := facilityRepo.GetRegions()
	if err != nil {
		http.Error(w, "could not fetch regions", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, regions)
}

// resolveStaff finds the surgeon named by id or, failing that, by name.
func resolveStaff(id *int, name string) (models.Staff, error) {
	if id != nil {
		return staffRepo.GetByID(*id)
	}
	return staffRepo.GetByName(strings.TrimSpace(name))
}
