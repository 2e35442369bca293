package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env             string
	HTTPPort        string
	APIBaseURL      string
	EventStreamURL  string
	TokenFile       string
	RedisAddr       string
	SnapshotCache   bool
	SchedulePoll    time.Duration
	RateLimitPerMin int
}

// Load returns application config populated from environment variables with sensible defaults.
func Load() App {
	apiBase := strings.TrimRight(getEnv("API_BASE_URL", "http://127.0.0.1:5000/api"), "/")
	return App{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPPort:        getEnv("HTTP_PORT", "3000"),
		APIBaseURL:      apiBase,
		EventStreamURL:  getEnv("EVENT_WS_URL", deriveEventURL(apiBase)),
		TokenFile:       getEnv("TOKEN_FILE", ".kelasboard/token"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		SnapshotCache:   boolEnv("SNAPSHOT_CACHE", true),
		SchedulePoll:    durationEnv("SCHEDULE_POLL_INTERVAL", 5*time.Minute),
		RateLimitPerMin: intEnv("RATE_LIMIT_PER_MIN", 30),
	}
}

// deriveEventURL maps the REST base to the event stream on the same host:
// http(s)://host:port/api -> ws(s)://host:port/socket.
func deriveEventURL(apiBase string) string {
	u, err := url.Parse(apiBase)
	if err != nil || u.Host == "" {
		return "ws://127.0.0.1:5000/socket"
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return scheme + "://" + u.Host + "/socket"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using fallback %s", key, err, fallback)
			return fallback
		}
		return d
	}
	return fallback
}

func boolEnv(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if val == "1" || val == "true" || val == "TRUE" {
			return true
		}
		if val == "0" || val == "false" || val == "FALSE" {
			return false
		}
		log.Printf("invalid bool for %s, using fallback %v", key, fallback)
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var parsed int
		if _, err := fmt.Sscanf(val, "%d", &parsed); err == nil {
			return parsed
		}
		log.Printf("invalid int for %s, using fallback %d", key, fallback)
	}
	return fallback
}
