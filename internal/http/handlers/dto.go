package handlers

import (
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/progress"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

// SurgeryRequest logs a surgery. Either StaffID or StaffName identifies the
// surgeon; PerformedAt accepts YYYY-MM, YYYY-MM-DD or RFC3339.
type SurgeryRequest struct {
	StaffID         *int   `json:"staff_id,omitempty"`
	StaffName       string `json:"staff_name,omitempty"`
	HospitalID      int    `json:"hospital_id"`
	SurgeryType     string `json:"surgery_type"`
	PerformedAt     string `json:"performed_at"`
	Count           int    `json:"count"`
	PatientRef      string `json:"patient_ref,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
	Outcome         string `json:"outcome,omitempty"`
}

type SurgeriesSearchResult struct {
	Data []models.Surgery `json:"data"`
	Meta Meta             `json:"meta,omitempty"`
}

type ImportSurgeriesResult struct {
	ImportedCount int               `json:"imported"`
	Errors        []ValidationError `json:"errors"`
}

type StaffRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// TargetRequest assigns a monthly target. An unknown StaffName is created
// with Role on the fly.
type TargetRequest struct {
	StaffID     *int   `json:"staff_id,omitempty"`
	StaffName   string `json:"staff_name,omitempty"`
	Role        string `json:"role,omitempty"`
	CaseType    string `json:"case_type"`
	Period      string `json:"period"`
	TargetCount int    `json:"target_count"`
}

// Point is one labelled value of a chart series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type ForecastResponse struct {
	Label         string  `json:"label"`
	Value         float64 `json:"value"`
	Slope         float64 `json:"slope"`
	Intercept     float64 `json:"intercept"`
	LowConfidence bool    `json:"low_confidence"`
	Warning       string  `json:"warning,omitempty"`
}

type TrendResponse struct {
	Window        int              `json:"window"`
	Monthly       []Point          `json:"monthly"`
	MovingAverage []Point          `json:"moving_average"`
	Forecast      ForecastResponse `json:"forecast"`
}

type LeaderboardResult struct {
	Period string                   `json:"period,omitempty"`
	Data   []progress.StaffProgress `json:"data"`
}

type HealthResult struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Cache   string `json:"cache"`
}
