// Package seed applies the configured reference data to the record store.
package seed

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rogerio-castellano/surgery-tracker/internal/auth"
	"github.com/rogerio-castellano/surgery-tracker/internal/config"
	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

type Repos struct {
	Staff      repo.StaffRepository
	Facilities repo.FacilityRepository
	Users      repo.UserRepository
}

// Apply creates every seeded region, hospital, staff member and admin user
// that does not exist yet. Running it twice is a no-op.
func Apply(s config.Seed, r Repos) error {
	regionIDs := make(map[string]int, len(s.Regions))
	for _, name := range s.Regions {
		region, err := r.Facilities.GetRegionByName(name)
		if errors.Is(err, repo.ErrRegionNotFound) {
			region, err = r.Facilities.CreateRegion(models.Region{Name: name})
			if err == nil {
				slog.Info("seeded region", "name", name, "id", region.ID)
			}
		}
		if err != nil {
			return fmt.Errorf("seed region %q: %w", name, err)
		}
		regionIDs[name] = region.ID
	}

	for _, h := range s.Hospitals {
		if _, err := r.Facilities.GetHospitalByName(h.Name); err == nil {
			continue
		} else if !errors.Is(err, repo.ErrHospitalNotFound) {
			return fmt.Errorf("seed hospital %q: %w", h.Name, err)
		}

		regionID, ok := regionIDs[h.Region]
		if !ok {
			return fmt.Errorf("seed hospital %q: %w", h.Name, repo.ErrRegionNotFound)
		}
		created, err := r.Facilities.CreateHospital(models.Hospital{Name: h.Name, RegionID: regionID})
		if err != nil {
			return fmt.Errorf("seed hospital %q: %w", h.Name, err)
		}
		slog.Info("seeded hospital", "name", h.Name, "id", created.ID)
	}

	for _, st := range s.Staff {
		if _, err := r.Staff.GetByName(st.Name); err == nil {
			continue
		} else if !errors.Is(err, repo.ErrStaffNotFound) {
			return fmt.Errorf("seed staff %q: %w", st.Name, err)
		}
		created, err := r.Staff.Create(models.Staff{Name: st.Name, Role: st.Role})
		if err != nil {
			return fmt.Errorf("seed staff %q: %w", st.Name, err)
		}
		slog.Info("seeded staff", "name", st.Name, "id", created.ID)
	}

	return seedAdmin(s.Admin, r.Users)
}

func seedAdmin(a config.SeedAdmin, users repo.UserRepository) error {
	if a.Username == "" || a.Password == "" || users == nil {
		return nil
	}
	if _, err := users.GetByUsername(a.Username); err == nil {
		return nil
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := auth.HashPassword(a.Password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if _, err := users.CreateUser(models.User{
		Username:     a.Username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	slog.Info("seeded admin user", "username", a.Username)
	return nil
}
