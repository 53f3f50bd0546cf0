package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

type PostgresSurgeryRepository struct {
	db *sql.DB
}

func NewPostgresSurgeryRepository(db *sql.DB) *PostgresSurgeryRepository {
	return &PostgresSurgeryRepository{db: db}
}

const surgeryColumns = `id, staff_id, hospital_id, region_id, surgery_type, performed_at, count, patient_ref, duration_minutes, outcome, created_at`

func (r *PostgresSurgeryRepository) Create(s models.Surgery) (models.Surgery, error) {
	query := `INSERT INTO surgeries (staff_id, hospital_id, region_id, surgery_type, performed_at, count, patient_ref, duration_minutes, outcome)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		s.StaffID, s.HospitalID, s.RegionID, s.SurgeryType, s.PerformedAt.UTC(), s.Count,
		s.PatientRef, s.DurationMinutes, s.Outcome,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return models.Surgery{}, fmt.Errorf("failed to insert surgery: %w", err)
	}
	return s, nil
}

func (r *PostgresSurgeryRepository) GetByID(id int) (models.Surgery, error) {
	query := `SELECT ` + surgeryColumns + ` FROM surgeries WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s, err := scanSurgery(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Surgery{}, ErrSurgeryNotFound
	}
	return s, err
}

func (r *PostgresSurgeryRepository) Delete(id int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM surgeries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSurgeryNotFound
	}
	return nil
}

// Find returns matching surgeries. Without a limit every match is returned,
// since aggregations need the full set.
func (r *PostgresSurgeryRepository) Find(sf SurgeryFilter) ([]models.Surgery, int, error) {
	whereClause, args := buildSurgeryWhereClause(sf)

	total, err := r.getTotal(whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}
	if sf.Offset != nil && *sf.Offset >= total {
		return []models.Surgery{}, total, nil
	}

	query, queryArgs := buildSurgeryQuery(whereClause, args, sf)
	surgeries, err := r.executeQuery(query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return surgeries, total, nil
}

// buildSurgeryWhereClause constructs the WHERE clause and returns its arguments
func buildSurgeryWhereClause(sf SurgeryFilter) (string, []any) {
	whereClause := "WHERE 1=1"
	args := []any{}
	add := func(cond string, v any) {
		args = append(args, v)
		whereClause += fmt.Sprintf(" AND "+cond, len(args))
	}

	if sf.StaffID != nil {
		add("staff_id = $%d", *sf.StaffID)
	}
	if sf.HospitalID != nil {
		add("hospital_id = $%d", *sf.HospitalID)
	}
	if sf.RegionID != nil {
		add("region_id = $%d", *sf.RegionID)
	}
	if sf.SurgeryType != "" {
		add("surgery_type = $%d", sf.SurgeryType)
	}
	if sf.Since != nil {
		add("performed_at >= $%d", sf.Since.UTC())
	}
	if sf.Until != nil {
		add("performed_at <= $%d", sf.Until.UTC())
	}
	return whereClause, args
}

// buildSurgeryQuery constructs the SELECT with ordering and pagination
func buildSurgeryQuery(whereClause string, baseArgs []any, sf SurgeryFilter) (string, []any) {
	query := fmt.Sprintf("SELECT %s FROM surgeries %s ORDER BY performed_at, id", surgeryColumns, whereClause)
	args := make([]any, len(baseArgs))
	copy(args, baseArgs)

	if sf.Limit != nil && *sf.Limit > 0 {
		args = append(args, min(*sf.Limit, defaultLimit))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if sf.Offset != nil && *sf.Offset > 0 {
		args = append(args, *sf.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

func (r *PostgresSurgeryRepository) getTotal(whereClause string, args []any) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM surgeries "+whereClause, args...).Scan(&total)
	return total, err
}

func (r *PostgresSurgeryRepository) executeQuery(query string, args []any) ([]models.Surgery, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	surgeries := []models.Surgery{}
	for rows.Next() {
		s, err := scanSurgery(rows)
		if err != nil {
			return nil, err
		}
		surgeries = append(surgeries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return surgeries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSurgery(row rowScanner) (models.Surgery, error) {
	var (
		s        models.Surgery
		duration sql.NullInt64
	)
	err := row.Scan(&s.ID, &s.StaffID, &s.HospitalID, &s.RegionID, &s.SurgeryType,
		&s.PerformedAt, &s.Count, &s.PatientRef, &duration, &s.Outcome, &s.CreatedAt)
	if err != nil {
		return models.Surgery{}, err
	}
	if duration.Valid {
		d := int(duration.Int64)
		s.DurationMinutes = &d
	}
	return s, nil
}
