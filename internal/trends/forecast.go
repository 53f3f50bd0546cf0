package trends

// ForecastPoint is the one-month-ahead prediction from a least-squares line
// fitted to the monthly series. PredictedTotal is not clamped and may be
// negative for a declining trend.
type ForecastPoint struct {
	Month          YearMonth `json:"month"`
	PredictedTotal float64   `json:"predicted_total"`
	Slope          float64   `json:"slope"`
	Intercept      float64   `json:"intercept"`

	// Warning is ErrDegenerateFit when the fit used a single point.
	Warning error `json:"-"`
}

// LowConfidence reports whether the forecast came from a degenerate fit.
func (f ForecastPoint) LowConfidence() bool {
	return f.Warning != nil
}

// ForecastNextMonth fits y = slope*x + intercept with x = 1..n being the
// position in the series (not the calendar month) and extrapolates to n+1.
func ForecastNextMonth(series []MonthlyTotal) (ForecastPoint, error) {
	n := len(series)
	if n == 0 {
		return ForecastPoint{}, ErrInsufficientData
	}

	next := series[n-1].Month.Next()
	if n == 1 {
		y := float64(series[0].Total)
		return ForecastPoint{
			Month:          next,
			PredictedTotal: y,
			Intercept:      y,
			Warning:        ErrDegenerateFit,
		}, nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range series {
		x := float64(i + 1)
		y := float64(p.Total)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	nf := float64(n)
	slope := (nf*sumXY - sumX*sumY) / (nf*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / nf

	return ForecastPoint{
		Month:          next,
		PredictedTotal: slope*(nf+1) + intercept,
		Slope:          slope,
		Intercept:      intercept,
	}, nil
}
