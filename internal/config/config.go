package config

import (
	"os"
	"strconv"
)

type Config struct {
	Host string
	Port int

	// MaxNeighborhoods bounds a single request. Silhouette evaluation is
	// O(n²) in the point count, so the ceiling is explicit configuration
	// rather than silent degradation.
	MaxNeighborhoods int

	// OptimalKPointCap bounds the optimal-k search. Above this point count
	// the silhouette sweep is skipped and HeuristicK is used instead.
	OptimalKPointCap int

	// HeuristicK is the cluster count assumed when the sweep is skipped.
	HeuristicK int

	// DefaultSeed is used when a request carries no seed.
	DefaultSeed int64
}

func DefaultConfig() Config {
	return Config{
		Host:             "0.0.0.0",
		Port:             8000,
		MaxNeighborhoods: 10000,
		OptimalKPointCap: 2000,
		HeuristicK:       5,
		DefaultSeed:      42,
	}
}

func LoadConfig() Config {
	cfg := DefaultConfig()

	if host := os.Getenv("HP_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("HP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if maxN := os.Getenv("HP_MAX_NEIGHBORHOODS"); maxN != "" {
		if m, err := strconv.Atoi(maxN); err == nil && m > 0 {
			cfg.MaxNeighborhoods = m
		}
	}
	if kCap := os.Getenv("HP_OPTIMAL_K_CAP"); kCap != "" {
		if c, err := strconv.Atoi(kCap); err == nil && c > 0 {
			cfg.OptimalKPointCap = c
		}
	}
	if heuristic := os.Getenv("HP_HEURISTIC_K"); heuristic != "" {
		if k, err := strconv.Atoi(heuristic); err == nil && k > 0 {
			cfg.HeuristicK = k
		}
	}
	if seed := os.Getenv("HP_DEFAULT_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.DefaultSeed = s
		}
	}

	return cfg
}
