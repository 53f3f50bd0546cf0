package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

type PostgresTargetRepository struct {
	db *sql.DB
}

func NewPostgresTargetRepository(db *sql.DB) *PostgresTargetRepository {
	return &PostgresTargetRepository{db: db}
}

func (r *PostgresTargetRepository) Create(t models.Target) (models.Target, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO targets (staff_id, case_type, period, target_count) VALUES ($1, $2, $3, $4) RETURNING id`,
		t.StaffID, t.CaseType, t.Period, t.TargetCount,
	).Scan(&t.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Target{}, ErrStaffNotFound
		}
		return models.Target{}, fmt.Errorf("failed to insert target: %w", err)
	}
	return t, nil
}

func (r *PostgresTargetRepository) Find(tf TargetFilter) ([]models.Target, error) {
	query := `SELECT id, staff_id, case_type, period, target_count FROM targets WHERE 1=1`
	args := []any{}
	if tf.StaffID != nil {
		args = append(args, *tf.StaffID)
		query += fmt.Sprintf(" AND staff_id = $%d", len(args))
	}
	if tf.Period != "" {
		args = append(args, tf.Period)
		query += fmt.Sprintf(" AND period = $%d", len(args))
	}
	query += " ORDER BY id"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	targets := []models.Target{}
	for rows.Next() {
		var t models.Target
		if err := rows.Scan(&t.ID, &t.StaffID, &t.CaseType, &t.Period, &t.TargetCount); err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, rows.Err()
}
