package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Recommendation RecommendationConfig
	Log            LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost      string
	DBPort      string
	DBName      string
	DBUser      string
	DBPassword  string
	DBSSLMode   string
	AutoMigrate bool
	RunSeeders  bool

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret    string
	AccessExpiresIn time.Duration
}

type RecommendationConfig struct {
	DashboardLimit int
	CacheTTL       time.Duration
}

type LogConfig struct {
	JSON  bool
	Debug bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:      req("DB_HOST"),
		DBPort:      req("DB_PORT"),
		DBName:      req("DB_NAME"),
		DBUser:      req("DB_USER"),
		DBPassword:  opt("DB_PASSWORD"),
		DBSSLMode:   stringOr(opt("DB_SSL_MODE"), "disable"),
		AutoMigrate: boolOr(opt("DB_AUTO_MIGRATE"), false),
		RunSeeders:  boolOr(opt("DB_RUN_SEEDERS"), false),

		ConnectTimeout:        secondsOr(opt("DB_CONNECT_TIMEOUT"), 5*time.Second),
		PoolMaxConns:          int32(intOr(opt("DB_POOL_MAX_CONNS"), 0)),
		PoolMinConns:          int32(intOr(opt("DB_POOL_MIN_CONNS"), 0)),
		PoolMaxConnLifetime:   secondsOr(opt("DB_POOL_MAX_CONN_LIFETIME"), 0),
		PoolMaxConnIdleTime:   secondsOr(opt("DB_POOL_MAX_CONN_IDLE_TIME"), 0),
		PoolHealthCheckPeriod: secondsOr(opt("DB_POOL_HEALTH_CHECK_PERIOD"), 0),
	}

	cfg.Redis = RedisConfig{
		Host:     stringOr(opt("REDIS_HOST"), "localhost"),
		Port:     stringOr(opt("REDIS_PORT"), "6379"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      secondsOr(opt("REDIS_TTL"), 600*time.Second),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:    req("JWT_ACCESS_SECRET"),
		AccessExpiresIn: secondsOr(opt("JWT_ACCESS_EXPIRES_IN"), 15*time.Minute),
	}

	cfg.Recommendation = RecommendationConfig{
		DashboardLimit: intOr(opt("RECOMMENDATION_LIMIT"), 10),
		CacheTTL:       secondsOr(opt("RECOMMENDATION_CACHE_TTL"), 60*time.Second),
	}

	cfg.Log = LogConfig{
		JSON:  strings.EqualFold(opt("LOG_FORMAT"), "json"),
		Debug: strings.EqualFold(opt("LOG_LEVEL"), "debug"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if cfg.Recommendation.DashboardLimit < 1 {
		return Config{}, fmt.Errorf("RECOMMENDATION_LIMIT must be positive, got %d", cfg.Recommendation.DashboardLimit)
	}

	return cfg, nil
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOr(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func boolOr(raw string, def bool) bool {
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func secondsOr(raw string, def time.Duration) time.Duration {
	v := intOr(raw, -1)
	if v < 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
