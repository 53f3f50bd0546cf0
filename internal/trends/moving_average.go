package trends

// DefaultWindow is the trailing window used by the dashboard.
const DefaultWindow = 3

// MovingAverage is the mean of the trailing window ending at Month.
type MovingAverage struct {
	Month   YearMonth `json:"month"`
	Average float64   `json:"average"`
}

// ComputeMovingAverage returns the trailing mean for every month that has a
// full window behind it. The first window-1 months produce no entry; they are
// never padded. A window longer than the series yields an empty result.
func ComputeMovingAverage(series []MonthlyTotal, window int) ([]MovingAverage, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}
	if window > len(series) {
		return []MovingAverage{}, nil
	}

	out := make([]MovingAverage, 0, len(series)-window+1)
	sum := 0
	for i, p := range series {
		sum += p.Total
		if i >= window {
			sum -= series[i-window].Total
		}
		if i >= window-1 {
			out = append(out, MovingAverage{
				Month:   p.Month,
				Average: float64(sum) / float64(window),
			})
		}
	}
	return out, nil
}
