// Package mloop implements persistent physical-loopback (MLOOP)
// configuration for Mellanox SONiC switches: building the port-name to
// logical-port translation table from an SDK dump, resolving port ranges,
// applying loopback per port with bounded retry, and persisting the
// configured set so it can be replayed after a restart.
package mloop

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// Literal markers bounding the port table section of a saisdkdump snapshot.
const (
	dumpSectionStart = "netdev_dump"
	dumpSectionEnd   = "cmd_ifc_dump"
)

// dumpHeaderLines is the fixed-format header at the top of the netdev
// section (marker line, rule, column titles, rule).
const dumpHeaderLines = 4

// Entry pairs a front-panel port name with its SDK logical port id.
type Entry struct {
	Port    string
	Logical string
}

// TranslationTable is an ordered mapping from port name to SDK logical
// port id, built once per run from a saisdkdump snapshot and immutable
// afterwards. Entries are ordered by the numeric suffix of the port name
// (non-Ethernet names sort as 0); range resolution depends on this order
// matching physical port order.
type TranslationTable struct {
	entries []Entry
	index   map[string]string
}

// Lookup returns the logical port id for a port name.
func (t *TranslationTable) Lookup(port string) (string, bool) {
	logical, ok := t.index[port]
	return logical, ok
}

// Logical returns the logical port id for a port name, or a
// PortNotFoundError naming the missing port.
func (t *TranslationTable) Logical(port string) (string, error) {
	logical, ok := t.index[port]
	if !ok {
		return "", &util.PortNotFoundError{Port: port}
	}
	return logical, nil
}

// Len returns the number of entries.
func (t *TranslationTable) Len() int {
	return len(t.entries)
}

// Entries returns the table entries in stored order. The returned slice
// must not be modified.
func (t *TranslationTable) Entries() []Entry {
	return t.entries
}

// ParseSDKDump parses the netdev port table out of a saisdkdump snapshot.
// The table lives between the dumpSectionStart and dumpSectionEnd markers;
// a missing marker is a parse failure (MarkerError), never an empty table.
// Within the section, the 4-line header is skipped and each remaining row
// is split on whitespace: rows with fewer than 3 fields are ignored,
// otherwise field 2 is the port name and field 3 the logical id. A
// duplicate port name overwrites the earlier entry.
func ParseSDKDump(text string) (*TranslationTable, error) {
	start := strings.Index(text, dumpSectionStart)
	if start < 0 {
		return nil, &util.MarkerError{Marker: dumpSectionStart}
	}
	section := text[start:]
	end := strings.Index(section, dumpSectionEnd)
	if end < 0 {
		return nil, &util.MarkerError{Marker: dumpSectionEnd}
	}
	section = section[:end]

	index := make(map[string]string)
	var order []string

	lines := strings.Split(section, "\n")
	if len(lines) > dumpHeaderLines {
		lines = lines[dumpHeaderLines:]
	} else {
		lines = nil
	}

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		port, logical := fields[1], fields[2]
		if _, dup := index[port]; dup {
			util.WithPort(port).Warnf("duplicate entry in SDK dump, keeping logical port %s", logical)
		} else {
			order = append(order, port)
		}
		index[port] = logical
	}

	entries := make([]Entry, 0, len(order))
	for _, port := range order {
		entries = append(entries, Entry{Port: port, Logical: index[port]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return util.PortSortKey(entries[i].Port) < util.PortSortKey(entries[j].Port)
	})

	return &TranslationTable{entries: entries, index: index}, nil
}

// BuildTranslationTable triggers a fresh SDK dump at dumpPath and parses
// it into a TranslationTable. An empty table is a setup failure: the
// switch either has no ports visible to the SDK or the dump format
// changed, and nothing can be configured from it.
func BuildTranslationTable(runner ToolRunner, dumpPath string) (*TranslationTable, error) {
	if err := runner.GenerateDump(dumpPath); err != nil {
		return nil, fmt.Errorf("generating SDK dump: %w", err)
	}

	data, err := os.ReadFile(dumpPath)
	if err != nil {
		return nil, fmt.Errorf("reading SDK dump %s: %w", dumpPath, err)
	}

	table, err := ParseSDKDump(string(data))
	if err != nil {
		return nil, err
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: no ports parsed from %s", util.ErrEmptyTranslation, dumpPath)
	}
	return table, nil
}
