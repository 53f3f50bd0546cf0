package repo

import (
	"sync"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

type InMemoryStaffRepository struct {
	mu     sync.RWMutex
	staff  []models.Staff
	nextID int
}

func NewInMemoryStaffRepository() *InMemoryStaffRepository {
	return &InMemoryStaffRepository{staff: []models.Staff{}, nextID: 1}
}

func (r *InMemoryStaffRepository) Create(s models.Staff) (models.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.staff {
		if existing.Name == s.Name {
			return models.Staff{}, ErrDuplicatedValueUnique
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.staff = append(r.staff, s)
	return s, nil
}

func (r *InMemoryStaffRepository) GetByID(id int) (models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Staff{}, ErrStaffNotFound
}

func (r *InMemoryStaffRepository) GetByName(name string) (models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.staff {
		if s.Name == name {
			return s, nil
		}
	}
	return models.Staff{}, ErrStaffNotFound
}

func (r *InMemoryStaffRepository) GetAll() ([]models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Staff, len(r.staff))
	copy(out, r.staff)
	return out, nil
}

func (r *InMemoryStaffRepository) Clear() {
	r.mu.Lock()
	r.staff = []models.Staff{}
	r.mu.Unlock()
}

type InMemoryFacilityRepository struct {
	mu        sync.RWMutex
	regions   []models.Region
	hospitals []models.Hospital
}

func NewInMemoryFacilityRepository() *InMemoryFacilityRepository {
	return &InMemoryFacilityRepository{regions: []models.Region{}, hospitals: []models.Hospital{}}
}

func (r *InMemoryFacilityRepository) CreateRegion(region models.Region) (models.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.regions {
		if existing.Name == region.Name {
			return models.Region{}, ErrDuplicatedValueUnique
		}
	}
	region.ID = len(r.regions) + 1
	r.regions = append(r.regions, region)
	return region, nil
}

func (r *InMemoryFacilityRepository) GetRegions() ([]models.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Region, len(r.regions))
	copy(out, r.regions)
	return out, nil
}

func (r *InMemoryFacilityRepository) GetRegionByName(name string) (models.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, region := range r.regions {
		if region.Name == name {
			return region, nil
		}
	}
	return models.Region{}, ErrRegionNotFound
}

func (r *InMemoryFacilityRepository) CreateHospital(h models.Hospital) (models.Hospital, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, region := range r.regions {
		if region.ID == h.RegionID {
			found = true
			break
		}
	}
	if !found {
		return models.Hospital{}, ErrRegionNotFound
	}
	for _, existing := range r.hospitals {
		if existing.Name == h.Name {
			return models.Hospital{}, ErrDuplicatedValueUnique
		}
	}
	h.ID = len(r.hospitals) + 1
	r.hospitals = append(r.hospitals, h)
	return h, nil
}

func (r *InMemoryFacilityRepository) GetHospitalByID(id int) (models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hospitals {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Hospital{}, ErrHospitalNotFound
}

func (r *InMemoryFacilityRepository) GetHospitalByName(name string) (models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hospitals {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Hospital{}, ErrHospitalNotFound
}

func (r *InMemoryFacilityRepository) GetHospitals() ([]models.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Hospital, len(r.hospitals))
	copy(out, r.hospitals)
	return out, nil
}
