package repo

import "github.com/rogerio-castellano/surgery-tracker/internal/models"

type StaffRepository interface {
	Create(s models.Staff) (models.Staff, error)
	GetByID(id int) (models.Staff, error)
	// GetByName matches the name exactly, as the admin panel typed it.
	GetByName(name string) (models.Staff, error)
	GetAll() ([]models.Staff, error)
}

// FacilityRepository holds the hospitals and the regions they belong to.
type FacilityRepository interface {
	CreateRegion(r models.Region) (models.Region, error)
	GetRegions() ([]models.Region, error)
	GetRegionByName(name string) (models.Region, error)
	CreateHospital(h models.Hospital) (models.Hospital, error)
	GetHospitalByID(id int) (models.Hospital, error)
	GetHospitalByName(name string) (models.Hospital, error)
	GetHospitals() ([]models.Hospital, error)
}
