package repo

type BusiestHospital struct {
	Name         string `json:"name"`
	SurgeryCount int    `json:"surgery_count"`
}

// Metrics is the dashboard headline block.
type Metrics struct {
	TotalSurgeries  int             `json:"total_surgeries"`
	LoggedEntries   int             `json:"logged_entries"`
	StaffCount      int             `json:"staff_count"`
	HospitalCount   int             `json:"hospital_count"`
	BusiestHospital BusiestHospital `json:"busiest_hospital"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
