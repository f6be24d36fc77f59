package mloop

import (
	"fmt"
	"os"
	"path/filepath"
)

// Supervisor service definition that re-runs the tool on switch restart.
const (
	DefaultServiceDir = "/etc/supervisor/conf.d"
	ServiceFileName   = "persistent_mloop.conf"
)

// EnsureServiceFile verifies the supervisor service definition is
// installed, copying it from sourceDir when missing. Without the service
// file the configuration would not survive a restart, so its absence from
// both locations is a setup failure.
func EnsureServiceFile(serviceDir, sourceDir string) error {
	target := filepath.Join(serviceDir, ServiceFileName)
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	source := filepath.Join(sourceDir, ServiceFileName)
	data, err := os.ReadFile(source)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found in %s or %s", ServiceFileName, serviceDir, sourceDir)
		}
		return fmt.Errorf("reading %s: %w", source, err)
	}

	if err := os.WriteFile(target, data, 0644); err != nil {
		return fmt.Errorf("installing %s: %w", target, err)
	}
	return nil
}
