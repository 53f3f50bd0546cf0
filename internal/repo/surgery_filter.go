package repo

import "time"

// SurgeryFilter narrows a record query. Nil fields do not filter.
type SurgeryFilter struct {
	StaffID     *int
	HospitalID  *int
	RegionID    *int
	SurgeryType string
	Since       *time.Time
	Until       *time.Time
	Offset      *int
	Limit       *int
}

// Unpaged returns a copy of the filter without offset and limit, used when
// every matching record feeds an aggregation.
func (f SurgeryFilter) Unpaged() SurgeryFilter {
	f.Offset = nil
	f.Limit = nil
	return f
}
