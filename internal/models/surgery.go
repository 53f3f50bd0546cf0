package models

import "time"

// Surgery is a single logged surgery entry. Count lets one entry cover several
// procedures of the same type performed in the same month.
type Surgery struct {
	ID              int       `json:"id"`
	StaffID         int       `json:"staff_id"`
	HospitalID      int       `json:"hospital_id"`
	RegionID        int       `json:"region_id"`
	SurgeryType     string    `json:"surgery_type"`
	PerformedAt     time.Time `json:"performed_at"`
	Count           int       `json:"count"`
	PatientRef      string    `json:"patient_ref,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	Outcome         string    `json:"outcome,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SurgeryTypes lists the orthopedic case types accepted when logging.
var SurgeryTypes = []string{"trauma", "spine", "tumor", "arthroplasty"}

// CaseTypeAll matches every surgery type on a target.
const CaseTypeAll = "all"

func IsSurgeryType(t string) bool {
	for _, st := range SurgeryTypes {
		if st == t {
			return true
		}
	}
	return false
}
