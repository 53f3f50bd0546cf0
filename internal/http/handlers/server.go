package handlers

import (
	"github.com/rogerio-castellano/surgery-tracker/internal/cache"
	repo "github.com/rogerio-castellano/surgery-tracker/internal/repo"
	"github.com/rogerio-castellano/surgery-tracker/internal/trends"
)

var (
	surgeryRepo  repo.SurgeryRepository
	targetRepo   repo.TargetRepository
	staffRepo    repo.StaffRepository
	facilityRepo repo.FacilityRepository
	metricsRepo  repo.MetricsRepository
	userRepo     repo.UserRepository

	trendCache cache.TrendCache = cache.NewNoop(nil)

	defaultWindow = trends.DefaultWindow
	maxWindow     = 24
)

func SetSurgeryRepo(r repo.SurgeryRepository) {
	surgeryRepo = r
}

func SetTargetRepo(r repo.TargetRepository) {
	targetRepo = r
}

func SetStaffRepo(r repo.StaffRepository) {
	staffRepo = r
}

func SetFacilityRepo(r repo.FacilityRepository) {
	facilityRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetTrendCache(c cache.TrendCache) {
	trendCache = c
}

// SetTrendWindow sets the moving-average window used when a request does not
// pass one, and the largest window a request may ask for.
func SetTrendWindow(window, max int) {
	defaultWindow = window
	maxWindow = max
}
