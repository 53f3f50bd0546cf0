// Package progress measures staff surgery counts against their assigned targets.
package progress

import (
	"math"
	"sort"

	"github.com/rogerio-castellano/surgery-tracker/internal/models"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

type TargetProgress struct {
	TargetID    int    `json:"target_id"`
	CaseType    string `json:"case_type"`
	Period      string `json:"period"`
	TargetCount int    `json:"target_count"`
	Achieved    int    `json:"achieved"`
}

type StaffProgress struct {
	Rank         int              `json:"rank"`
	StaffID      int              `json:"staff_id"`
	Name         string           `json:"name"`
	Role         string           `json:"role"`
	TotalTargets int              `json:"total_targets"`
	Achieved     int              `json:"achieved"`
	ProgressPct  float64          `json:"progress_pct"`
	Targets      []TargetProgress `json:"targets"`
}

// Compute returns one entry per staff member, in the order given.
//
// When period is set only targets and records of that YYYY-MM month count;
// an empty period covers everything. Achieved is the staff member's total
// surgery count; each target additionally reports the count matching its own
// period and case type.
func Compute(staff []models.Staff, targets []models.Target, records []models.Surgery, period string) []StaffProgress {
	byStaff := make(map[int][]models.Surgery)
	for _, r := range records {
		if period != "" && trends.MonthOf(r.PerformedAt).String() != period {
			continue
		}
		byStaff[r.StaffID] = append(byStaff[r.StaffID], r)
	}

	targetsByStaff := make(map[int][]models.Target)
	for _, t := range targets {
		if period != "" && t.Period != period {
			continue
		}
		targetsByStaff[t.StaffID] = append(targetsByStaff[t.StaffID], t)
	}

	out := make([]StaffProgress, 0, len(staff))
	for _, s := range staff {
		p := StaffProgress{
			StaffID: s.ID,
			Name:    s.Name,
			Role:    s.Role,
			Targets: []TargetProgress{},
		}
		own := byStaff[s.ID]
		for _, r := range own {
			p.Achieved += r.Count
		}
		for _, t := range targetsByStaff[s.ID] {
			p.TotalTargets += t.TargetCount
			p.Targets = append(p.Targets, TargetProgress{
				TargetID:    t.ID,
				CaseType:    t.CaseType,
				Period:      t.Period,
				TargetCount: t.TargetCount,
				Achieved:    achievedFor(t, own),
			})
		}
		p.ProgressPct = Percent(p.Achieved, p.TotalTargets)
		out = append(out, p)
	}
	return out
}

func achievedFor(t models.Target, records []models.Surgery) int {
	n := 0
	for _, r := range records {
		if trends.MonthOf(r.PerformedAt).String() != t.Period {
			continue
		}
		if t.CaseType != models.CaseTypeAll && t.CaseType != r.SurgeryType {
			continue
		}
		n += r.Count
	}
	return n
}

// Percent returns achieved/target as a percentage rounded to one decimal, or
// zero when no target is set.
func Percent(achieved, target int) float64 {
	if target <= 0 {
		return 0
	}
	return math.Round(float64(achieved)/float64(target)*1000) / 10
}

// Rank sorts by progress, then achieved count, then name and numbers the
// entries from 1. The input slice is reordered in place.
func Rank(list []StaffProgress) []StaffProgress {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.ProgressPct != b.ProgressPct {
			return a.ProgressPct > b.ProgressPct
		}
		if a.Achieved != b.Achieved {
			return a.Achieved > b.Achieved
		}
		return a.Name < b.Name
	})
	for i := range list {
		list[i].Rank = i + 1
	}
	return list
}
