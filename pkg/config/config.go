// Package config loads the tool configuration from a YAML file, falling
// back to built-in defaults when the file is absent. All filesystem paths
// the tool touches are configured here so tests can run against temporary
// directories.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mellanox-sonic/mloopctl/pkg/mloop"
	"github.com/mellanox-sonic/mloopctl/pkg/sonic"
)

// DefaultPath is where the tool looks for its configuration on the switch.
const DefaultPath = "/etc/mloop_conf/mloopctl.yaml"

// WaitSpec describes a bounded retry: how many attempts and how long to
// wait between them.
type WaitSpec struct {
	Attempts     int `yaml:"attempts"`
	DelaySeconds int `yaml:"delay_seconds"`
}

// Delay returns the inter-attempt delay as a duration.
func (w WaitSpec) Delay() time.Duration {
	return time.Duration(w.DelaySeconds) * time.Second
}

// Config holds all tunable paths and retry policies.
type Config struct {
	// DumpPath is where saisdkdump writes its snapshot.
	DumpPath string `yaml:"dump_path"`
	// StateDir holds the persisted port configuration.
	StateDir string `yaml:"state_dir"`
	// ServiceDir is the supervisor conf.d directory.
	ServiceDir string `yaml:"service_dir"`
	// RedisAddr is the SONiC redis instance for readiness checks.
	RedisAddr string `yaml:"redis_addr"`
	// InitWait bounds the switch-readiness poll.
	InitWait WaitSpec `yaml:"init_wait"`
	// TxRetry bounds the per-port TX-signal retry.
	TxRetry WaitSpec `yaml:"tx_retry"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DumpPath:   "/saisdkdump_file",
		StateDir:   mloop.DefaultStateDir,
		ServiceDir: mloop.DefaultServiceDir,
		RedisAddr:  sonic.DefaultRedisAddr,
		InitWait:   WaitSpec{Attempts: 10, DelaySeconds: 30},
		TxRetry:    WaitSpec{Attempts: 10, DelaySeconds: 10},
	}
}

// Load reads the configuration from path. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DumpPath == "" {
		return fmt.Errorf("dump_path is required")
	}
	if c.StateDir == "" {
		return fmt.Errorf("state_dir is required")
	}
	if c.InitWait.Attempts <= 0 || c.TxRetry.Attempts <= 0 {
		return fmt.Errorf("retry attempts must be positive")
	}
	return nil
}

// RetryPolicy converts the TX retry settings into the configurator's policy.
func (c *Config) RetryPolicy() mloop.RetryPolicy {
	return mloop.RetryPolicy{
		MaxAttempts: c.TxRetry.Attempts,
		Delay:       c.TxRetry.Delay(),
		Sleep:       time.Sleep,
	}
}
