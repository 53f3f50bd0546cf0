package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rogerio-castellano/surgery-tracker/internal/auth"
	"github.com/rogerio-castellano/surgery-tracker/internal/cache"
	"github.com/rogerio-castellano/surgery-tracker/internal/config"
	"github.com/rogerio-castellano/surgery-tracker/internal/db"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/surgery-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/surgery-tracker/internal/http/router"
	"github.com/rogerio-castellano/surgery-tracker/internal/logging"
	"github.com/rogerio-castellano/surgery-tracker/internal/metrics"
	"github.com/rogerio-castellano/surgery-tracker/internal/repo"
	"github.com/rogerio-castellano/surgery-tracker/internal/seed"
)

// @title Surgery Tracker API
// @version 1.0
// @description REST API for logging orthopedic surgeries, tracking staff targets and forecasting monthly trends.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", os.Getenv("SURGERY_CONFIG"), "path to a YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env file", "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	logging.Init(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	auth.Configure(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	rl.Configure(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go rl.StartVisitorCleanupLoop(ctx, time.Minute)
	handlers.SetTrendWindow(cfg.Trends.Window, cfg.Trends.MaxWindow)

	seedRepos, closeStore, err := setupStore(ctx, cfg.Database.URL)
	if err != nil {
		slog.Error("could not set up record store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	if err := seed.Apply(cfg.Seed, seedRepos); err != nil {
		slog.Error("could not apply seed data", "error", err)
		os.Exit(1)
	}

	closeCache := setupCache(ctx, cfg.Redis)
	defer closeCache()

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router.NewRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server running", "addr", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// setupStore wires Postgres repositories when dbURL is set and in-memory ones otherwise.
func setupStore(ctx context.Context, dbURL string) (seed.Repos, func(), error) {
	if dbURL == "" {
		slog.Warn("database.url not set, using in-memory record store")

		surgeries := repo.NewInMemorySurgeryRepository()
		staff := repo.NewInMemoryStaffRepository()
		facilities := repo.NewInMemoryFacilityRepository()
		users := repo.NewInMemoryUserRepository()
		dashboard := repo.NewInMemoryMetricsRepository()
		dashboard.SetRepositories(surgeries, staff, facilities)

		handlers.SetSurgeryRepo(surgeries)
		handlers.SetTargetRepo(repo.NewInMemoryTargetRepository())
		handlers.SetStaffRepo(staff)
		handlers.SetFacilityRepo(facilities)
		handlers.SetUserRepo(users)
		handlers.SetMetricsRepo(dashboard)
		return seed.Repos{Staff: staff, Facilities: facilities, Users: users}, func() {}, nil
	}

	database, err := db.Connect(dbURL)
	if err != nil {
		return seed.Repos{}, nil, err
	}
	if err := db.Migrate(ctx, database); err != nil {
		_ = database.Close()
		return seed.Repos{}, nil, err
	}

	staff := repo.NewPostgresStaffRepository(database)
	facilities := repo.NewPostgresFacilityRepository(database)
	users := repo.NewPostgresUserRepository(database)

	handlers.SetSurgeryRepo(repo.NewPostgresSurgeryRepository(database))
	handlers.SetTargetRepo(repo.NewPostgresTargetRepository(database))
	handlers.SetStaffRepo(staff)
	handlers.SetFacilityRepo(facilities)
	handlers.SetUserRepo(users)
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))

	slog.Info("connected to postgres")
	return seed.Repos{Staff: staff, Facilities: facilities, Users: users}, closer(database), nil
}

func closer(database *sql.DB) func() {
	return func() {
		if err := database.Close(); err != nil {
			slog.Warn("could not close database", "error", err)
		}
	}
}

// setupCache enables the Redis trend cache. A Redis outage at start-up only
// disables caching.
func setupCache(ctx context.Context, rc config.RedisConfig) func() {
	obs := metrics.CacheObserver{}
	if rc.Addr == "" {
		handlers.SetTrendCache(cache.NewNoop(obs))
		return func() {}
	}

	rdb, err := cache.Connect(ctx, rc.Addr, rc.Password, rc.DB)
	if err != nil {
		slog.Warn("trend cache disabled", "error", err)
		handlers.SetTrendCache(cache.NewNoop(obs))
		return func() {}
	}

	handlers.SetTrendCache(cache.NewRedisCache(rdb, rc.TTL, obs))
	slog.Info("trend cache enabled", "addr", rc.Addr, "ttl", rc.TTL)
	return func() { _ = rdb.Close() }
}
