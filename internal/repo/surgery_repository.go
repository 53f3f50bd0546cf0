package repo

import "github.com/rogerio-castellano/surgery-tracker/internal/models"

// SurgeryRepository is the record store for logged surgeries.
type SurgeryRepository interface {
	Create(s models.Surgery) (models.Surgery, error)
	GetByID(id int) (models.Surgery, error)
	Delete(id int) error
	// Find returns matching records ordered by performed_at then id, and the
	// total number of matches before pagination.
	Find(sf SurgeryFilter) ([]models.Surgery, int, error)
}
