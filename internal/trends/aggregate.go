package trends

import (
	"sort"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
)

// MonthlyTotal is the sum of surgery counts within one calendar month.
type MonthlyTotal struct {
	Month YearMonth `json:"month"`
	Total int       `json:"total"`
}

// Aggregate groups records by calendar month and sums their counts.
//
// The result is chronological, from the earliest to the latest month present.
// Months inside that range without any record are emitted with a zero total,
// so the series has no gaps and positions line up with elapsed months.
func Aggregate(records []models.Surgery) []MonthlyTotal {
	if len(records) == 0 {
		return []MonthlyTotal{}
	}

	sums := make(map[int]int)
	first, last := MonthOf(records[0].PerformedAt).ordinal(), 0
	for _, r := range records {
		o := MonthOf(r.PerformedAt).ordinal()
		sums[o] += r.Count
		first = min(first, o)
		last = max(last, o)
	}

	series := make([]MonthlyTotal, 0, last-first+1)
	for o := first; o <= last; o++ {
		series = append(series, MonthlyTotal{Month: fromOrdinal(o), Total: sums[o]})
	}
	return series
}

// Grouping selects the key AggregateBy sums over.
type Grouping string

const (
	ByStaff    Grouping = "staff"
	ByHospital Grouping = "hospital"
	ByRegion   Grouping = "region"
)

func (g Grouping) Valid() bool {
	switch g {
	case ByStaff, ByHospital, ByRegion:
		return true
	}
	return false
}

// GroupTotal is the summed count for one staff member, hospital or region.
type GroupTotal struct {
	ID    int `json:"id"`
	Total int `json:"total"`
}

// AggregateBy sums record counts per grouping id, ordered by id.
func AggregateBy(records []models.Surgery, g Grouping) []GroupTotal {
	sums := make(map[int]int)
	for _, r := range records {
		sums[groupKey(r, g)] += r.Count
	}

	out := make([]GroupTotal, 0, len(sums))
	for id, total := range sums {
		out = append(out, GroupTotal{ID: id, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func groupKey(r models.Surgery, g Grouping) int {
	switch g {
	case ByHospital:
		return r.HospitalID
	case ByRegion:
		return r.RegionID
	default:
		return r.StaffID
	}
}
