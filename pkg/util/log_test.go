package util

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer Logger.SetLevel(logrus.InfoLevel)

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("SetLogLevel(debug) error = %v", err)
	}
	if Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", Logger.GetLevel())
	}

	if err := SetLogLevel("bogus"); err == nil {
		t.Error("SetLogLevel(bogus) should fail")
	}
}

func TestWithPort(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	WithPort("Ethernet0").Info("configured")

	out := buf.String()
	if !strings.Contains(out, "port=Ethernet0") || !strings.Contains(out, "configured") {
		t.Errorf("log output = %q, want port field and message", out)
	}
}
