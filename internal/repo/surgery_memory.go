package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

// InMemorySurgeryRepository is an in-memory implementation of SurgeryRepository.
type InMemorySurgeryRepository struct {
	mu        sync.RWMutex
	surgeries []models.Surgery
	nextID    int
}

func NewInMemorySurgeryRepository() *InMemorySurgeryRepository {
	return &InMemorySurgeryRepository{
		surgeries: []models.Surgery{},
		nextID:    1,
	}
}

func (r *InMemorySurgeryRepository) Create(s models.Surgery) (models.Surgery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = r.nextID
	r.nextID++
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	r.surgeries = append(r.surgeries, s)
	return s, nil
}

func (r *InMemorySurgeryRepository) GetByID(id int) (models.Surgery, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.surgeries {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Surgery{}, ErrSurgeryNotFound
}

func (r *InMemorySurgeryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.surgeries {
		if s.ID == id {
			r.surgeries = append(r.surgeries[:i], r.surgeries[i+1:]...)
			return nil
		}
	}
	return ErrSurgeryNotFound
}

func (r *InMemorySurgeryRepository) Find(sf SurgeryFilter) ([]models.Surgery, int, error) {
	r.mu.RLock()
	filtered := []models.Surgery{}
	for _, s := range r.surgeries {
		if matchesSurgery(s, sf) {
			filtered = append(filtered, s)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].PerformedAt.Equal(filtered[j].PerformedAt) {
			return filtered[i].PerformedAt.Before(filtered[j].PerformedAt)
		}
		return filtered[i].ID < filtered[j].ID
	})

	items, total := page(filtered, sf.Offset, sf.Limit)
	return items, total, nil
}

// Clear drops every record; used by tests between cases.
func (r *InMemorySurgeryRepository) Clear() {
	r.mu.Lock()
	r.surgeries = []models.Surgery{}
	r.mu.Unlock()
}

func matchesSurgery(s models.Surgery, sf SurgeryFilter) bool {
	if sf.StaffID != nil && s.StaffID != *sf.StaffID {
		return false
	}
	if sf.HospitalID != nil && s.HospitalID != *sf.HospitalID {
		return false
	}
	if sf.RegionID != nil && s.RegionID != *sf.RegionID {
		return false
	}
	if sf.SurgeryType != "" && s.SurgeryType != sf.SurgeryType {
		return false
	}
	if sf.Since != nil && s.PerformedAt.Before(*sf.Since) {
		return false
	}
	if sf.Until != nil && s.PerformedAt.After(*sf.Until) {
		return false
	}
	return true
}
