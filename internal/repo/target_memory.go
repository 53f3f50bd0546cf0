package repo

import (
	"sync"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

type InMemoryTargetRepository struct {
	mu      sync.RWMutex
	targets []models.Target
}

func NewInMemoryTargetRepository() *InMemoryTargetRepository {
	return &InMemoryTargetRepository{targets: []models.Target{}}
}

func (r *InMemoryTargetRepository) Create(t models.Target) (models.Target, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ID = len(r.targets) + 1
	r.targets = append(r.targets, t)
	return t, nil
}

func (r *InMemoryTargetRepository) Find(tf TargetFilter) ([]models.Target, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Target{}
	for _, t := range r.targets {
		if tf.StaffID != nil && t.StaffID != *tf.StaffID {
			continue
		}
		if tf.Period != "" && t.Period != tf.Period {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *InMemoryTargetRepository) Clear() {
	r.mu.Lock()
	r.targets = []models.Target{}
	r.mu.Unlock()
}
