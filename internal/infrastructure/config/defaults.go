package config

import "time"

const (
	DefaultHTTPPort        = "8080"
	DefaultShutdownTimeout = 10 * time.Second
	DefaultRequestTimeout  = 10 * time.Second
	DefaultNetmonPoll      = 2 * time.Second
	DefaultPGMaxConns      = 5
	DefaultPGMinConns      = 1
	DefaultPGConnectWait   = 30 * time.Second
)
