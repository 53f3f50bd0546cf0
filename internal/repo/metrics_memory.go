package repo

type InMemoryMetricsRepository struct {
	surgeryRepo  SurgeryRepository
	staffRepo    StaffRepository
	facilityRepo FacilityRepository
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	surgeries, total, err := i.surgeryRepo.Find(SurgeryFilter{})
	if err != nil {
		return m, err
	}
	m.LoggedEntries = total

	perHospital := make(map[int]int)
	for _, s := range surgeries {
		m.TotalSurgeries += s.Count
		perHospital[s.HospitalID] += s.Count
	}

	staff, err := i.staffRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.StaffCount = len(staff)

	hospitals, err := i.facilityRepo.GetHospitals()
	if err != nil {
		return m, err
	}
	m.HospitalCount = len(hospitals)

	// Hospitals are ordered by id, so ties keep the lowest id.
	for _, h := range hospitals {
		if count := perHospital[h.ID]; count > m.BusiestHospital.SurgeryCount {
			m.BusiestHospital.Name = h.Name
			m.BusiestHospital.SurgeryCount = count
		}
	}

	return m, nil
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	surgeryRepo SurgeryRepository,
	staffRepo StaffRepository,
	facilityRepo FacilityRepository,
) {
	i.surgeryRepo = surgeryRepo
	i.staffRepo = staffRepo
	i.facilityRepo = facilityRepo
}
