package models

// Target is a monthly surgery goal assigned to a staff member.
type Target struct {
	ID          int    `json:"id"`
	StaffID     int    `json:"staff_id"`
	CaseType    string `json:"case_type"`
	Period      string `json:"period"` // YYYY-MM
	TargetCount int    `json:"target_count"`
}
