package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("METRICS_PORT", "")
	t.Setenv("WORKER_COUNT", "")

	cfg := Load()
	if cfg.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %q, want 9090", cfg.MetricsPort)
	}
	if cfg.WorkerCount != 5 {
		t.Errorf("WorkerCount = %d, want 5", cfg.WorkerCount)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("METRICS_PORT", "9100")
	t.Setenv("WORKER_COUNT", "12")
	t.Setenv("RULES_PATH", "configs/rules.yaml")

	cfg := Load()
	if cfg.MetricsPort != "9100" {
		t.Errorf("MetricsPort = %q, want 9100", cfg.MetricsPort)
	}
	if cfg.WorkerCount != 12 {
		t.Errorf("WorkerCount = %d, want 12", cfg.WorkerCount)
	}
	if cfg.RulesPath != "configs/rules.yaml" {
		t.Errorf("RulesPath = %q", cfg.RulesPath)
	}
}

func TestLoadRejectsBadWorkerCount(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-3")

	if cfg := Load(); cfg.WorkerCount != 5 {
		t.Errorf("WorkerCount = %d, want default 5 for invalid value", cfg.WorkerCount)
	}
}
