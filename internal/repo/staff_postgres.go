package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

type PostgresStaffRepository struct {
	db *sql.DB
}

func NewPostgresStaffRepository(db *sql.DB) *PostgresStaffRepository {
	return &PostgresStaffRepository{db: db}
}

func (r *PostgresStaffRepository) Create(s models.Staff) (models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `INSERT INTO staff (name, role) VALUES ($1, $2) RETURNING id`, s.Name, s.Role).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Staff{}, ErrDuplicatedValueUnique
		}
		return models.Staff{}, fmt.Errorf("failed to insert staff: %w", err)
	}
	return s, nil
}

func (r *PostgresStaffRepository) GetByID(id int) (models.Staff, error) {
	return r.getOne(`SELECT id, name, role FROM staff WHERE id = $1`, id)
}

func (r *PostgresStaffRepository) GetByName(name string) (models.Staff, error) {
	return r.getOne(`SELECT id, name, role FROM staff WHERE name = $1`, name)
}

func (r *PostgresStaffRepository) getOne(query string, arg any) (models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Staff
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&s.ID, &s.Name, &s.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Staff{}, ErrStaffNotFound
	}
	return s, err
}

func (r *PostgresStaffRepository) GetAll() ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, role FROM staff ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := []models.Staff{}
	for rows.Next() {
		var s models.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Role); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

type PostgresFacilityRepository struct {
	db *sql.DB
}

func NewPostgresFacilityRepository(db *sql.DB) *PostgresFacilityRepository {
	return &PostgresFacilityRepository{db: db}
}

func (r *PostgresFacilityRepository) CreateRegion(region models.Region) (models.Region, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `INSERT INTO regions (name) VALUES ($1) RETURNING id`, region.Name).Scan(&region.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Region{}, ErrDuplicatedValueUnique
		}
		return models.Region{}, fmt.Errorf("failed to insert region: %w", err)
	}
	return region, nil
}

func (r *PostgresFacilityRepository) GetRegions() ([]models.Region, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM regions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name); err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

func (r *PostgresFacilityRepository) GetRegionByName(name string) (models.Region, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var region models.Region
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM regions WHERE name = $1`, name).Scan(&region.ID, &region.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Region{}, ErrRegionNotFound
	}
	return region, err
}

func (r *PostgresFacilityRepository) CreateHospital(h models.Hospital) (models.Hospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO hospitals (name, region_id) VALUES ($1, $2) RETURNING id`, h.Name, h.RegionID).Scan(&h.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Hospital{}, ErrDuplicatedValueUnique
		}
		if isForeignKeyViolation(err) {
			return models.Hospital{}, ErrRegionNotFound
		}
		return models.Hospital{}, fmt.Errorf("failed to insert hospital: %w", err)
	}
	return h, nil
}

func (r *PostgresFacilityRepository) GetHospitalByID(id int) (models.Hospital, error) {
	return r.getHospital(`SELECT id, name, region_id FROM hospitals WHERE id = $1`, id)
}

func (r *PostgresFacilityRepository) GetHospitalByName(name string) (models.Hospital, error) {
	return r.getHospital(`SELECT id, name, region_id FROM hospitals WHERE name = $1`, name)
}

func (r *PostgresFacilityRepository) getHospital(query string, arg any) (models.Hospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var h models.Hospital
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&h.ID, &h.Name, &h.RegionID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Hospital{}, ErrHospitalNotFound
	}
	return h, err
}

func (r *PostgresFacilityRepository) GetHospitals() ([]models.Hospital, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, region_id FROM hospitals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := []models.Hospital{}
	for rows.Next() {
		var h models.Hospital
		if err := rows.Scan(&h.ID, &h.Name, &h.RegionID); err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}
