// Package config loads service configuration from the environment.
//
// Malformed or out-of-range values never abort startup: each falls back to its
// documented default with a logged warning, mirroring the lenient fallback
// behavior of the pricing conventions themselves.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all service settings. The pricing engine itself is
// configured per call; these are the service-layer defaults handed to it.
type AppConfig struct {
	Env  string
	Port string

	// Curve data
	DataDir        string
	CurveGlob      string
	CurveMaxPoints int

	// Engine conventions
	DayCount            string
	FixedFrequency      int
	DiscountingStrategy string
	InterpStrategy      string
	ExtrapolationPolicy string

	// Input limits
	NotionalMax      float64
	MaturityMaxYears int

	// Curve cache
	CurveCacheEnabled bool
	CurveCacheMaxSize int
	CurveCacheTTL     time.Duration

	// HTTP hardening
	EnableAuth bool
	// Resolved credentials never serialize; the config dump and the
	// /api/config view must stay secret-free.
	AuthUser           string `json:"-"`
	AuthPass           string `json:"-"`
	EnableRateLimit    bool
	RateLimitPerMin    int
	CORSAllowedOrigins []string

	// Logging
	LogLevel  string
	LogFormat string
}

var validFrequencies = map[int]bool{1: true, 2: true, 4: true, 12: true}

// Load reads configuration from .env (if present) and the process environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded; relying on OS environment and defaults")
	}

	cfg := &AppConfig{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DataDir:        getEnv("DATA_DIR", "data/curves"),
		CurveGlob:      getEnv("CURVE_GLOB", "SwapRates_*.csv"),
		CurveMaxPoints: getEnvInt("CURVE_MAX_POINTS", 200),

		DayCount:            getEnv("DAY_COUNT", "ACT/365F"),
		FixedFrequency:      getEnvInt("FIXED_FREQUENCY", 2),
		DiscountingStrategy: getEnv("DISCOUNTING_STRATEGY", "exp_cont"),
		InterpStrategy:      getEnv("INTERP_STRATEGY", "linear_zero"),
		ExtrapolationPolicy: getEnv("EXTRAPOLATION_POLICY", "clamp"),

		NotionalMax:      getEnvFloat("NOTIONAL_MAX", 1e11),
		MaturityMaxYears: getEnvInt("MATURITY_MAX_YEARS", 100),

		CurveCacheEnabled: getEnvBool("CURVE_CACHE_ENABLED", true),
		CurveCacheMaxSize: getEnvInt("CURVE_CACHE_MAXSIZE", 4),
		CurveCacheTTL:     time.Duration(getEnvInt("CURVE_CACHE_TTL_SECONDS", 300)) * time.Second,

		EnableAuth:      getEnvBool("ENABLE_AUTH", false),
		AuthUser:        os.Getenv(getEnv("AUTH_USER_ENV", "API_USER")),
		AuthPass:        os.Getenv(getEnv("AUTH_PASS_ENV", "API_PASS")),
		EnableRateLimit: getEnvBool("ENABLE_RATE_LIMIT", false),
		RateLimitPerMin: getEnvInt("RATE_LIMIT_PER_MIN", 60),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS",
			"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "plain"),
	}

	if strings.HasPrefix(strings.ToLower(cfg.Env), "prod") {
		// Production tightens the defaults unless explicitly overridden.
		if os.Getenv("ENABLE_AUTH") == "" {
			cfg.EnableAuth = true
		}
		if os.Getenv("LOG_FORMAT") == "" {
			cfg.LogFormat = "json"
		}
		if os.Getenv("CORS_ALLOWED_ORIGINS") == "" {
			cfg.CORSAllowedOrigins = nil
		}
	}

	cfg.validate()
	return cfg
}

// validate repairs invalid convention values in place, logging each fallback.
func (c *AppConfig) validate() {
	if !validFrequencies[c.FixedFrequency] {
		log.Printf("WARNING: FIXED_FREQUENCY %d must be 1, 2, 4 or 12; using 2", c.FixedFrequency)
		c.FixedFrequency = 2
	}
	switch c.ExtrapolationPolicy {
	case "clamp", "error":
	default:
		log.Printf("WARNING: EXTRAPOLATION_POLICY %q must be clamp or error; using clamp", c.ExtrapolationPolicy)
		c.ExtrapolationPolicy = "clamp"
	}
	switch c.InterpStrategy {
	case "linear_zero", "log_linear_df":
	default:
		log.Printf("WARNING: INTERP_STRATEGY %q must be linear_zero or log_linear_df; using linear_zero", c.InterpStrategy)
		c.InterpStrategy = "linear_zero"
	}
	if c.CurveCacheMaxSize < 1 {
		log.Printf("WARNING: CURVE_CACHE_MAXSIZE %d must be >= 1; using 4", c.CurveCacheMaxSize)
		c.CurveCacheMaxSize = 4
	}
	if c.CurveCacheTTL < time.Second {
		log.Printf("WARNING: CURVE_CACHE_TTL_SECONDS must be >= 1; using 300")
		c.CurveCacheTTL = 300 * time.Second
	}
	if c.NotionalMax <= 0 {
		log.Printf("WARNING: NOTIONAL_MAX must be positive; using 1e11")
		c.NotionalMax = 1e11
	}
	if c.MaturityMaxYears < 1 {
		log.Printf("WARNING: MATURITY_MAX_YEARS must be >= 1; using 100")
		c.MaturityMaxYears = 100
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using default %g", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return b
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
