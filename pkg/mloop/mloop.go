package mloop

import (
	"errors"
	"fmt"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// Options selects what to configure. Ports and PortRange are mutually
// exclusive; with neither set, the previously saved configuration is
// replayed.
type Options struct {
	// Ports is an explicit list of port names.
	Ports []string
	// PortRange holds the start and end port names of an inclusive range.
	PortRange []string
	// LoopbackType is the vendor loopback mode; 0 clears loopback.
	LoopbackType int
}

// Validate rejects option combinations before any hardware is touched.
func (o Options) Validate() error {
	if len(o.Ports) > 0 && len(o.PortRange) > 0 {
		return fmt.Errorf("%w: ports and port-range are mutually exclusive", util.ErrConflictingInput)
	}
	if len(o.PortRange) != 0 && len(o.PortRange) != 2 {
		return fmt.Errorf("%w: port-range requires exactly a start and an end port", util.ErrConflictingInput)
	}
	return nil
}

// MloopConfig orchestrates one configuration pass: build the translation
// table, resolve the requested port set, drive the configurator over it,
// and persist the result. It is single-use and not safe for concurrent
// invocations; the surrounding service supervisor serializes runs.
type MloopConfig struct {
	runner   ToolRunner
	store    *Store
	dumpPath string
	retry    RetryPolicy

	table        *TranslationTable
	ports        []string
	loopbackType int
}

// New creates an orchestrator. The translation table is built lazily on
// Run, after input validation.
func New(runner ToolRunner, store *Store, dumpPath string, retry RetryPolicy) *MloopConfig {
	return &MloopConfig{
		runner:   runner,
		store:    store,
		dumpPath: dumpPath,
		retry:    retry,
	}
}

// Ports returns the port names configured during the pass, in the order
// they were configured.
func (m *MloopConfig) Ports() []string {
	return m.ports
}

// Run executes one configuration pass. A failed run never leaves a
// partially persisted state: persistence happens only after the pass over
// the port set completes. Per-port hardware failures do not fail the run.
func (m *MloopConfig) Run(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	m.loopbackType = opts.LoopbackType

	table, err := BuildTranslationTable(m.runner, m.dumpPath)
	if err != nil {
		return fmt.Errorf("parsing ports from SDK dump: %w", err)
	}
	m.table = table
	util.Info("Parsed logical ports from saisdkdump file")

	switch {
	case len(opts.PortRange) == 2:
		return m.configRange(opts.PortRange[0], opts.PortRange[1])
	case len(opts.Ports) > 0:
		m.configPorts(opts.Ports)
		return m.store.Save(m.ports, m.loopbackType)
	default:
		return m.restore()
	}
}

// configRange resolves the range and configures every port in it. Range
// resolution failure aborts before anything is configured or persisted.
func (m *MloopConfig) configRange(start, end string) error {
	entries, err := m.table.ResolveRange(start, end)
	if err != nil {
		return err
	}

	for _, e := range entries {
		m.configurePort(e.Port, e.Logical)
	}
	return m.store.Save(m.ports, m.loopbackType)
}

// configPorts configures an explicit list of port names. Unknown names
// are skipped with a diagnostic and excluded from the configured set.
func (m *MloopConfig) configPorts(ports []string) {
	for _, port := range ports {
		logical, err := m.table.Logical(port)
		if err != nil {
			util.Warnf("%v", err)
			continue
		}
		m.configurePort(port, logical)
	}
}

// restore replays the saved configuration. Replay is idempotent and does
// not re-persist: the saved file already is the declaration being applied.
func (m *MloopConfig) restore() error {
	saved, err := m.store.Load()
	if errors.Is(err, util.ErrNoSavedConfig) {
		util.Info("No port to configure")
		return nil
	}
	if err != nil {
		return err
	}

	m.loopbackType = saved.LoopbackType
	m.configPorts(saved.Ports)
	return nil
}

func (m *MloopConfig) configurePort(port, logical string) {
	c := &Configurator{Runner: m.runner, Retry: m.retry}
	out := c.ConfigurePort(logical, m.loopbackType)
	if !out.Configured {
		util.WithPort(port).Warnf("giving up after %d attempts", out.Attempts)
	}
	m.recordPort(port)
}

// recordPort appends to the configured set, keeping it unique by name.
func (m *MloopConfig) recordPort(port string) {
	for _, p := range m.ports {
		if p == port {
			return
		}
	}
	m.ports = append(m.ports, port)
}
