package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/surgery-tracker/internal/progress"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

// GetLeaderboardHandler godoc
// @Summary Staff progress against targets, ranked
// @Tags leaderboard
// @Produce json
// @Security BearerAuth
// @Param period query string false "Period (YYYY-MM); all periods when omitted"
// @Success 200 {object} LeaderboardResult
// @Failure 400 {string} string "Invalid period"
// @Router /leaderboard [get]
func GetLeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	filter := repo.SurgeryFilter{}
	if period != "" {
		month, err := trends.ParseYearMonth(period)
		if err != nil {
			http.Error(w, "period must be YYYY-MM", http.StatusBadRequest)
			return
		}
		period = month.String()
		since, until := month.Start(), month.End()
		filter.Since, filter.Until = &since, &until
	}

	staff, err := staffRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch staff", http.StatusInternalServerError)
		return
	}

	targets, err := targetRepo.Find(repo.TargetFilter{Period: period})
	if err != nil {
		http.Error(w, "could not fetch targets", http.StatusInternalServerError)
		return
	}

	records, _, err := surgeryRepo.Find(filter)
	if err != nil {
		http.Error(w, "could not retrieve surgeries", http.StatusInternalServerError)
		return
	}

	board := progress.Rank(progress.Compute(staff, targets, records, period))
	respondJSON(w, http.StatusOK, LeaderboardResult{Period: period, Data: board})
}
