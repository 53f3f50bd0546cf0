package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "SURGERY"

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("database.url", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("auth.jwt_secret", "super-secret-key")
	v.SetDefault("auth.token_ttl", 15*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("trends.window", 3)
	v.SetDefault("trends.max_window", 24)
	v.SetDefault("ratelimit.rps", 1.0)
	v.SetDefault("ratelimit.burst", 3)
	v.SetDefault("seed.regions", []string{})
	v.SetDefault("seed.hospitals", []map[string]any{})
	v.SetDefault("seed.staff", []map[string]any{})
	v.SetDefault("seed.admin.username", "")
	v.SetDefault("seed.admin.password", "")
}

// Load builds a Config by layering defaults, the YAML file at path (when
// non-empty) and SURGERY_* environment variables. SURGERY_AUTH_JWT_SECRET maps
// to auth.jwt_secret; SURGERY_JWT_SECRET is accepted as a shorthand.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("auth.jwt_secret", envPrefix+"_AUTH_JWT_SECRET", envPrefix+"_JWT_SECRET")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that the service cannot run with.
func (c Config) Validate() error {
	switch {
	case c.HTTP.Addr == "":
		return fmt.Errorf("%w: http.addr must not be empty", ErrInvalidConfig)
	case c.Auth.JWTSecret == "":
		return fmt.Errorf("%w: auth.jwt_secret must not be empty", ErrInvalidConfig)
	case c.Auth.TokenTTL <= 0:
		return fmt.Errorf("%w: auth.token_ttl must be positive", ErrInvalidConfig)
	case c.Trends.Window < 1:
		return fmt.Errorf("%w: trends.window must be at least 1", ErrInvalidConfig)
	case c.Trends.MaxWindow < c.Trends.Window:
		return fmt.Errorf("%w: trends.max_window must be >= trends.window", ErrInvalidConfig)
	case c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1:
		return fmt.Errorf("%w: ratelimit.rps and ratelimit.burst must be positive", ErrInvalidConfig)
	case c.Redis.Addr != "" && c.Redis.TTL <= 0:
		return fmt.Errorf("%w: redis.ttl must be positive when redis is enabled", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}

	regions := make(map[string]bool, len(c.Seed.Regions))
	for _, r := range c.Seed.Regions {
		regions[r] = true
	}
	for _, h := range c.Seed.Hospitals {
		if !regions[h.Region] {
			return fmt.Errorf("%w: seed hospital %q references unknown region %q", ErrInvalidConfig, h.Name, h.Region)
		}
	}
	return nil
}
