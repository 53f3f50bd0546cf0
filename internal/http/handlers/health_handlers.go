package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/surgery-tracker/internal/cache"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	res := HealthResult{Status: "ok", Storage: "memory", Cache: "disabled"}
	if _, ok := surgeryRepo.(*repo.PostgresSurgeryRepository); ok {
		res.Storage = "postgres"
	}
	if _, ok := trendCache.(*cache.RedisCache); ok {
		res.Cache = "redis"
	}
	respondJSON(w, http.StatusOK, res)
}
