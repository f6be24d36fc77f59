package mloop

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "mloop_conf"))

	ports := []string{"Ethernet0", "Ethernet4", "Ethernet8"}
	if err := store.Save(ports, 2); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(saved.Ports, ports) {
		t.Errorf("Load() ports = %v, want %v", saved.Ports, ports)
	}
	if saved.LoopbackType != 2 {
		t.Errorf("Load() loopback type = %d, want 2", saved.LoopbackType)
	}
}

func TestStore_LoadAbsent(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load()
	if !errors.Is(err, util.ErrNoSavedConfig) {
		t.Errorf("Load() error = %v, want ErrNoSavedConfig", err)
	}
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "mloop_conf")
	store := NewStore(dir)

	if err := store.Save([]string{"Ethernet0"}, 1); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "mloop_ports.json")); err != nil {
		t.Errorf("state file not created: %v", err)
	}
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Save([]string{"Ethernet0", "Ethernet4"}, 2); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := store.Save([]string{"Ethernet8"}, 0); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	saved, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Full snapshot replacement, no merge with the previous contents.
	if !reflect.DeepEqual(saved.Ports, []string{"Ethernet8"}) || saved.LoopbackType != 0 {
		t.Errorf("Load() = %+v, want ports [Ethernet8], type 0", saved)
	}
}

func TestStore_LoadMalformed(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	if err := os.WriteFile(filepath.Join(dir, "mloop_ports.json"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail on malformed state file")
	}
}
