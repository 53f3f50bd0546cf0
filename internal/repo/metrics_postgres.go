package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m Metrics

	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(count), 0), COUNT(*) FROM surgeries`).
		Scan(&m.TotalSurgeries, &m.LoggedEntries)
	if err != nil {
		return m, fmt.Errorf("failed to count surgeries: %w", err)
	}
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM staff`).Scan(&m.StaffCount)
	_ = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&m.HospitalCount)

	err = r.db.QueryRowContext(ctx, `
		SELECT h.name, SUM(s.count) AS cnt
		FROM surgeries s
		JOIN hospitals h ON s.hospital_id = h.id
		GROUP BY h.id, h.name
		ORDER BY cnt DESC, h.id
		LIMIT 1
	`).Scan(&m.BusiestHospital.Name, &m.BusiestHospital.SurgeryCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, fmt.Errorf("failed to find busiest hospital: %w", err)
	}

	return m, nil
}
