package handlers

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

const (
	minPerformedYear = 1900
	maxPerformedYear = 2100
)

// parsePerformedAt accepts a month, a date or a full timestamp.
func parsePerformedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, time.DateOnly, "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func validateSurgery(req SurgeryRequest) []ValidationError {
	errs := []ValidationError{}
	if req.StaffID == nil && strings.TrimSpace(req.StaffName) == "" {
		errs = append(errs, ValidationError{Field: "staff", Description: "staff_id or staff_name is required"})
	}
	if req.HospitalID <= 0 {
		errs = append(errs, ValidationError{Field: "hospital_id", Description: "hospital_id is required"})
	}
	if !models.IsSurgeryType(req.SurgeryType) {
		errs = append(errs, ValidationError{
			Field:       "surgery_type",
			Description: "surgery_type must be one of " + strings.Join(models.SurgeryTypes, ", "),
		})
	}
	if at, ok := parsePerformedAt(req.PerformedAt); !ok {
		errs = append(errs, ValidationError{Field: "performed_at", Description: "performed_at must be YYYY-MM, YYYY-MM-DD or RFC3339"})
	} else if y := at.Year(); y < minPerformedYear || y > maxPerformedYear {
		errs = append(errs, ValidationError{Field: "performed_at", Description: "performed_at must be between 1900 and 2100"})
	}
	if req.Count < 1 {
		errs = append(errs, ValidationError{Field: "count", Description: "count must be at least 1"})
	}
	if req.DurationMinutes != nil && *req.DurationMinutes < 0 {
		errs = append(errs, ValidationError{Field: "duration_minutes", Description: "duration_minutes cannot be negative"})
	}
	return errs
}

func validateTarget(req TargetRequest) []ValidationError {
	errs := []ValidationError{}
	if req.StaffID == nil && strings.TrimSpace(req.StaffName) == "" {
		errs = append(errs, ValidationError{Field: "staff", Description: "staff_id or staff_name is required"})
	}
	if req.CaseType != models.CaseTypeAll && !models.IsSurgeryType(req.CaseType) {
		errs = append(errs, ValidationError{
			Field:       "case_type",
			Description: "case_type must be 'all' or one of " + strings.Join(models.SurgeryTypes, ", "),
		})
	}
	if _, err := trends.ParseYearMonth(req.Period); err != nil {
		errs = append(errs, ValidationError{Field: "period", Description: "period must be YYYY-MM"})
	}
	if req.TargetCount < 1 {
		errs = append(errs, ValidationError{Field: "target_count", Description: "target_count must be at least 1"})
	}
	return errs
}

func validateStaff(req StaffRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	return errs
}
