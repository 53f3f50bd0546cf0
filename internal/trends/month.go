package trends

import (
	"fmt"
	"time"
)

const yearMonthLayout = "2006-01"

// YearMonth is a calendar month. Surgery dates only matter at this granularity.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the UTC calendar month of t.
func MonthOf(t time.Time) YearMonth {
	t = t.UTC()
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses a YYYY-MM period string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return MonthOf(t), nil
}

func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start returns the first instant of the month in UTC.
func (m YearMonth) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last instant of the month in UTC.
func (m YearMonth) End() time.Time {
	return m.Next().Start().Add(-time.Nanosecond)
}

func (m YearMonth) Next() YearMonth {
	return fromOrdinal(m.ordinal() + 1)
}

func (m YearMonth) Before(o YearMonth) bool {
	return m.ordinal() < o.ordinal()
}

func (m YearMonth) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m YearMonth) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *YearMonth) UnmarshalText(b []byte) error {
	parsed, err := ParseYearMonth(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ordinal counts months since year 0 so consecutive months differ by one.
func (m YearMonth) ordinal() int {
	return m.Year*12 + int(m.Month) - 1
}

// fromOrdinal floor-divides so months before year 0 keep a 1..12 month.
func fromOrdinal(o int) YearMonth {
	y, m := o/12, o%12
	if m < 0 {
		y--
		m += 12
	}
	return YearMonth{Year: y, Month: time.Month(m + 1)}
}
