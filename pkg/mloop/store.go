package mloop

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// Default location of the persisted configuration.
const (
	DefaultStateDir = "/etc/mloop_conf"
	stateFileName   = "mloop_ports.json"
)

// SavedConfig is the persisted loopback configuration: the complete set of
// configured port names plus the loopback type applied to them.
type SavedConfig struct {
	Ports        []string `json:"ports"`
	LoopbackType int      `json:"loopback_type"`
}

// Store persists the configured port set as a single JSON snapshot. The
// file is always a complete record or absent; saves overwrite, never merge.
type Store struct {
	Dir  string
	File string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, File: stateFileName}
}

func (s *Store) path() string {
	return filepath.Join(s.Dir, s.File)
}

// Save writes the configuration, creating the directory if needed. The
// write goes through a temp file and rename so a crash mid-write cannot
// leave a truncated snapshot.
func (s *Store) Save(ports []string, loopbackType int) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", s.Dir, err)
	}

	data, err := json.Marshal(&SavedConfig{Ports: ports, LoopbackType: loopbackType})
	if err != nil {
		return err
	}

	tmp := s.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path()); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", s.path(), err)
	}
	return nil
}

// Load reads the saved configuration. An absent file is not a failure:
// it returns ErrNoSavedConfig so the caller can report that there is
// nothing to configure.
func (s *Store) Load() (*SavedConfig, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, util.ErrNoSavedConfig
		}
		return nil, fmt.Errorf("reading %s: %w", s.path(), err)
	}

	var saved SavedConfig
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path(), err)
	}
	return &saved, nil
}
