package mloop

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

func rangeTable(t *testing.T) *TranslationTable {
	t.Helper()
	text := `netdev_dump:
---
 idx  name  log_port
---
 0    Ethernet0    0x100
 1    Ethernet4    0x200
 2    Ethernet8    0x300
 3    Ethernet12   0x400
cmd_ifc_dump:
`
	table, err := ParseSDKDump(text)
	if err != nil {
		t.Fatalf("ParseSDKDump() error = %v", err)
	}
	return table
}

func logicals(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Logical)
	}
	return out
}

func TestResolveRange(t *testing.T) {
	table := rangeTable(t)

	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "inner range inclusive both ends",
			start: "Ethernet4",
			end:   "Ethernet8",
			want:  []string{"0x200", "0x300"},
		},
		{
			name:  "full table",
			start: "Ethernet0",
			end:   "Ethernet12",
			want:  []string{"0x100", "0x200", "0x300", "0x400"},
		},
		{
			name:  "single port range",
			start: "Ethernet8",
			end:   "Ethernet8",
			want:  []string{"0x300"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ResolveRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("ResolveRange(%s, %s) error = %v", tt.start, tt.end, err)
			}
			if !reflect.DeepEqual(logicals(got), tt.want) {
				t.Errorf("ResolveRange(%s, %s) = %v, want %v", tt.start, tt.end, logicals(got), tt.want)
			}
		})
	}
}

func TestResolveRange_Failures(t *testing.T) {
	table := rangeTable(t)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{
			name:  "start not in table",
			start: "Ethernet100",
			end:   "Ethernet8",
		},
		{
			name:  "end not in table",
			start: "Ethernet4",
			end:   "Ethernet100",
		},
		{
			name:  "neither in table",
			start: "Ethernet100",
			end:   "Ethernet104",
		},
		{
			// End sighted before start is only a diagnostic; the scan
			// continues, never finds end again, and fails on end-missing.
			name:  "end before start",
			start: "Ethernet8",
			end:   "Ethernet0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.ResolveRange(tt.start, tt.end)
			if !errors.Is(err, util.ErrInvalidRange) {
				t.Errorf("ResolveRange(%s, %s) error = %v, want ErrInvalidRange", tt.start, tt.end, err)
			}
			if got != nil {
				t.Errorf("ResolveRange(%s, %s) = %v, want nil on failure", tt.start, tt.end, got)
			}
		})
	}
}
