package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit applied to one route.
type EndpointConfig struct {
	Path   string // exact path, or a prefix when it ends with "/"
	Method string
	Limit  int
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTTL         time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// Defaults used by LoadConfig and NewLimiter(nil)
const (
	DefaultLimit           = 600
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	DefaultIdleTTL         = time.Hour
)

// LoadConfig reads RATE_LIMIT_* environment variables.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", DefaultLimit),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", DefaultWindow),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", DefaultCleanupInterval),
		IdleTTL:         DefaultIdleTTL,
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(envInt("RATE_LIMIT_GENERATE_PER_HOUR", 20)),
	}
}

// DefaultEndpointConfigs limits generation hardest: each request fetches a
// site and may call the LLM. Deletes share a moderate limit and reads fall
// through to the default.
func DefaultEndpointConfigs(generatePerHour int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/styleguides", Method: "POST", Limit: generatePerHour, Window: time.Hour, Burst: 3},
		{Path: "/styleguides/stream", Method: "POST", Limit: generatePerHour, Window: time.Hour, Burst: 3},
		{Path: "/styleguides/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

// parseIPList turns "a, b,c" into a set.
func parseIPList(list string) map[string]bool {
	out := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			out[ip] = true
		}
	}
	return out
}
