// Package trends turns surgery records into monthly totals, a trailing moving
// average and a one-month-ahead linear forecast.
//
// Every function here is pure: the same records always produce the same
// output and nothing is cached between calls.
package trends

import "github.com/rogerio-castellano/surgery-tracker/internal/models"

// Report bundles everything the trends dashboard renders.
type Report struct {
	Monthly       []MonthlyTotal  `json:"monthly"`
	MovingAverage []MovingAverage `json:"moving_average"`
	Forecast      ForecastPoint   `json:"forecast"`
	Window        int             `json:"window"`
}

// Build aggregates records and runs the trend engine over the result.
// It fails with ErrInsufficientData when records is empty.
func Build(records []models.Surgery, window int) (Report, error) {
	monthly := Aggregate(records)

	avg, err := ComputeMovingAverage(monthly, window)
	if err != nil {
		return Report{}, err
	}

	forecast, err := ForecastNextMonth(monthly)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Monthly:       monthly,
		MovingAverage: avg,
		Forecast:      forecast,
		Window:        window,
	}, nil
}
