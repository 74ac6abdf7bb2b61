package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port string
	// Provider
	Provider       string
	IEXBaseURL     string
	IEXToken       string
	RequestTimeout time.Duration
	// Settings store
	SettingsBackend string
	SettingsPath    string
	DatabaseURL     string
	// Redis (settings)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	// Connectivity
	NetmonPoll time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func durMS(key string, defMS int) time.Duration {
	ms := atoiDef(getEnv(key, ""), defMS)
	if ms <= 0 {
		ms = defMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "8080"),
		Provider:        getEnv("PROVIDER", "iexcloud"),
		IEXBaseURL:      getEnv("IEX_BASE_URL", "https://cloud.iexapis.com/stable"),
		IEXToken:        getEnv("IEX_TOKEN", ""),
		RequestTimeout:  durMS("REQUEST_TIMEOUT_MS", 10000),
		SettingsBackend: getEnv("SETTINGS_BACKEND", "leveldb"),
		SettingsPath:    getEnv("SETTINGS_PATH", ".stocksinfo"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         atoiDef(getEnv("REDIS_DB", "0"), 0),
		RedisPrefix:     getEnv("REDIS_PREFIX", "stocksinfo:"),
		NetmonPoll:      durMS("NETMON_POLL_MS", 2000),
	}
}
