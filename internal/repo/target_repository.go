package repo

import "github.com/rogerio-castellano/surgery-tracker/internal/models"

// TargetFilter narrows target lookups. Zero values do not filter.
type TargetFilter struct {
	StaffID *int
	Period  string
}

type TargetRepository interface {
	Create(t models.Target) (models.Target, error)
	Find(tf TargetFilter) ([]models.Target, error)
}
