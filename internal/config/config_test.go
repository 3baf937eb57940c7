package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8000 {
		t.Errorf("expected port 8000, got %d", cfg.Port)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Host)
	}
	if cfg.MaxNeighborhoods != 10000 {
		t.Errorf("expected 10000 max neighborhoods, got %d", cfg.MaxNeighborhoods)
	}
	if cfg.OptimalKPointCap != 2000 {
		t.Errorf("expected optimal-k cap 2000, got %d", cfg.OptimalKPointCap)
	}
	if cfg.DefaultSeed != 42 {
		t.Errorf("expected default seed 42, got %d", cfg.DefaultSeed)
	}
}

func TestLoadConfigEnvVars(t *testing.T) {
	t.Setenv("HP_HOST", "127.0.0.1")
	t.Setenv("HP_PORT", "9999")
	t.Setenv("HP_MAX_NEIGHBORHOODS", "500")
	t.Setenv("HP_OPTIMAL_K_CAP", "100")
	t.Setenv("HP_HEURISTIC_K", "8")
	t.Setenv("HP_DEFAULT_SEED", "7")

	cfg := LoadConfig()

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected host override, got %s", cfg.Host)
	}
	if cfg.Port != 9999 {
		t.Errorf("expected port 9999, got %d", cfg.Port)
	}
	if cfg.MaxNeighborhoods != 500 {
		t.Errorf("expected 500 max neighborhoods, got %d", cfg.MaxNeighborhoods)
	}
	if cfg.OptimalKPointCap != 100 {
		t.Errorf("expected optimal-k cap 100, got %d", cfg.OptimalKPointCap)
	}
	if cfg.HeuristicK != 8 {
		t.Errorf("expected heuristic k 8, got %d", cfg.HeuristicK)
	}
	if cfg.DefaultSeed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.DefaultSeed)
	}
}

func TestLoadConfigIgnoresInvalidValues(t *testing.T) {
	t.Setenv("HP_PORT", "not-a-port")
	t.Setenv("HP_MAX_NEIGHBORHOODS", "-3")
	t.Setenv("HP_HEURISTIC_K", "0")

	cfg := LoadConfig()

	if cfg.Port != 8000 {
		t.Errorf("invalid port should keep default, got %d", cfg.Port)
	}
	if cfg.MaxNeighborhoods != 10000 {
		t.Errorf("invalid ceiling should keep default, got %d", cfg.MaxNeighborhoods)
	}
	if cfg.HeuristicK != 5 {
		t.Errorf("non-positive heuristic k should keep default, got %d", cfg.HeuristicK)
	}
}
