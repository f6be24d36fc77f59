package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AbsentFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DumpPath != "/saisdkdump_file" {
		t.Errorf("DumpPath = %q, want /saisdkdump_file", cfg.DumpPath)
	}
	if cfg.StateDir != "/etc/mloop_conf" {
		t.Errorf("StateDir = %q, want /etc/mloop_conf", cfg.StateDir)
	}
	if cfg.InitWait.Attempts != 10 || cfg.InitWait.Delay() != 30*time.Second {
		t.Errorf("InitWait = %+v, want 10 attempts at 30s", cfg.InitWait)
	}
	if cfg.TxRetry.Attempts != 10 || cfg.TxRetry.Delay() != 10*time.Second {
		t.Errorf("TxRetry = %+v, want 10 attempts at 10s", cfg.TxRetry)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mloopctl.yaml")
	content := `dump_path: /tmp/dump
state_dir: /tmp/state
tx_retry:
  attempts: 3
  delay_seconds: 1
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DumpPath != "/tmp/dump" {
		t.Errorf("DumpPath = %q, want /tmp/dump", cfg.DumpPath)
	}
	if cfg.TxRetry.Attempts != 3 || cfg.TxRetry.Delay() != time.Second {
		t.Errorf("TxRetry = %+v, want 3 attempts at 1s", cfg.TxRetry)
	}
	// Unset keys keep their defaults.
	if cfg.ServiceDir != "/etc/supervisor/conf.d" {
		t.Errorf("ServiceDir = %q, want default", cfg.ServiceDir)
	}
	if cfg.InitWait.Attempts != 10 {
		t.Errorf("InitWait.Attempts = %d, want default 10", cfg.InitWait.Attempts)
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mloopctl.yaml")
	if err := os.WriteFile(path, []byte("dump_path: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mloopctl.yaml")
	if err := os.WriteFile(path, []byte("tx_retry:\n  attempts: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject zero retry attempts")
	}
}

func TestRetryPolicy(t *testing.T) {
	cfg := Default()
	p := cfg.RetryPolicy()
	if p.MaxAttempts != 10 || p.Delay != 10*time.Second {
		t.Errorf("RetryPolicy() = %+v, want 10 attempts at 10s", p)
	}
}
