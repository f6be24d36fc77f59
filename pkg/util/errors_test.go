package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMarkerError(t *testing.T) {
	err := &MarkerError{Marker: "netdev_dump"}

	if !errors.Is(err, ErrMarkerNotFound) {
		t.Error("MarkerError should unwrap to ErrMarkerNotFound")
	}
	if !strings.Contains(err.Error(), "netdev_dump") {
		t.Errorf("Error() = %q, should name the marker", err.Error())
	}

	wrapped := fmt.Errorf("parsing dump: %w", err)
	var merr *MarkerError
	if !errors.As(wrapped, &merr) || merr.Marker != "netdev_dump" {
		t.Error("MarkerError should survive wrapping")
	}
}

func TestRangeError(t *testing.T) {
	err := NewRangeError("Ethernet0", "Ethernet8", "end port Ethernet8 doesn't exist")

	if !errors.Is(err, ErrInvalidRange) {
		t.Error("RangeError should unwrap to ErrInvalidRange")
	}
	msg := err.Error()
	for _, part := range []string{"Ethernet0", "Ethernet8", "doesn't exist"} {
		if !strings.Contains(msg, part) {
			t.Errorf("Error() = %q, should contain %q", msg, part)
		}
	}
}

func TestPortNotFoundError(t *testing.T) {
	err := &PortNotFoundError{Port: "Ethernet64"}

	if !errors.Is(err, ErrPortNotFound) {
		t.Error("PortNotFoundError should unwrap to ErrPortNotFound")
	}
	if err.Error() != "Ethernet64 doesn't exist" {
		t.Errorf("Error() = %q", err.Error())
	}
}
