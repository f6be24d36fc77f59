package mloop

import (
	"fmt"

	"github.com/mellanox-sonic/mloopctl/pkg/util"
)

// ResolveRange returns the table entries from the first occurrence of
// start through the first occurrence of end, inclusive on both sides,
// in stored table order. Scanning stops at the first occurrence of end.
//
// Sighting end before start is reported as a diagnostic but does not by
// itself fail resolution; the scan continues. Resolution fails when start
// is never found, when end is never found after start, or when the range
// collects nothing.
func (t *TranslationTable) ResolveRange(start, end string) ([]Entry, error) {
	started := false
	done := false
	outOfOrder := false
	var collected []Entry

	for _, e := range t.entries {
		if !started {
			if e.Port == start {
				started = true
			} else {
				if e.Port == end && !outOfOrder {
					util.Errorf("invalid range: end port %s found before start port %s", end, start)
					outOfOrder = true
				}
				continue
			}
		}
		collected = append(collected, e)
		if e.Port == end {
			done = true
			break
		}
	}

	if !started {
		return nil, util.NewRangeError(start, end, fmt.Sprintf("start port %s doesn't exist", start))
	}
	if !done {
		return nil, util.NewRangeError(start, end, fmt.Sprintf("end port %s doesn't exist", end))
	}
	if len(collected) == 0 {
		return nil, util.NewRangeError(start, end, "empty range")
	}

	return collected, nil
}
