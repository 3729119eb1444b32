package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the runtime configuration, read from environment variables
type Config struct {
	Port               string
	DBPath             string
	OSRMBaseURL        string
	OSRMTimeout        time.Duration
	AggregationWorkers int
	SeedDemoData       bool
}

// Load reads the configuration from the environment, applying defaults
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/road.db"
	}

	osrmBaseURL := os.Getenv("OSRM_BASE_URL")
	if osrmBaseURL == "" {
		osrmBaseURL = "https://router.project-osrm.org"
	}

	osrmTimeout := 10 * time.Second
	if v := os.Getenv("OSRM_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			osrmTimeout = time.Duration(secs) * time.Second
		}
	}

	workers := 4
	if v := os.Getenv("AGGREGATION_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}

	seed := true
	if v := os.Getenv("SEED_DEMO_DATA"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			seed = b
		}
	}

	return &Config{
		Port:               port,
		DBPath:             dbPath,
		OSRMBaseURL:        osrmBaseURL,
		OSRMTimeout:        osrmTimeout,
		AggregationWorkers: workers,
		SeedDemoData:       seed,
	}
}
