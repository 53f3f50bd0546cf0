package trends

import "errors"

var (
	// ErrInsufficientData is returned when a forecast is requested over an empty series.
	ErrInsufficientData = errors.New("not enough data")

	// ErrDegenerateFit marks a forecast built from a single point. It is carried
	// on ForecastPoint.Warning and is not returned as a failure.
	ErrDegenerateFit = errors.New("degenerate fit: a single month cannot support a trend line")

	ErrInvalidWindow = errors.New("moving average window must be a positive integer")
)
