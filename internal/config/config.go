// Package config loads service settings from defaults, an optional YAML file
// and SURGERY_ environment variables, in that order of precedence.
package config

import (
	"time"
)

type Config struct {
	HTTP      HTTPConfig      `mapstructure:"http"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Log       LogConfig       `mapstructure:"log"`
	Trends    TrendsConfig    `mapstructure:"trends"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Seed      Seed            `mapstructure:"seed"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// DatabaseConfig points at Postgres. An empty URL selects the in-memory store.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// RedisConfig enables the trend cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TrendsConfig struct {
	Window    int `mapstructure:"window"`
	MaxWindow int `mapstructure:"max_window"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// Seed lists the reference data applied to the record store at start-up.
type Seed struct {
	Regions   []string       `mapstructure:"regions"`
	Hospitals []SeedHospital `mapstructure:"hospitals"`
	Staff     []SeedStaff    `mapstructure:"staff"`
	Admin     SeedAdmin      `mapstructure:"admin"`
}

type SeedHospital struct {
	Name   string `mapstructure:"name"`
	Region string `mapstructure:"region"`
}

type SeedStaff struct {
	Name string `mapstructure:"name"`
	Role string `mapstructure:"role"`
}

// SeedAdmin is created on start-up when both fields are set and the user is missing.
type SeedAdmin struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}
