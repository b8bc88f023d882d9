// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the recruit service.
type Config struct {
	Port                 string
	RedisURL             string
	SweepIntervalMinutes int // How often the deadline sweep fires
	AnalysisDelaySeconds int // Simulated analysis latency
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	interval := 1
	if s := os.Getenv("SWEEP_INTERVAL_MINUTES"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("SWEEP_INTERVAL_MINUTES must be a positive integer, got %q", s)
		}
		interval = v
	}

	delay := 3
	if s := os.Getenv("ANALYSIS_DELAY_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("ANALYSIS_DELAY_SECONDS must be a non-negative integer, got %q", s)
		}
		delay = v
	}

	port := os.Getenv("RECRUIT_PORT")
	if port == "" {
		port = "8083"
	}

	return &Config{
		Port:                 port,
		RedisURL:             redisURL,
		SweepIntervalMinutes: interval,
		AnalysisDelaySeconds: delay,
	}, nil
}
