package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/imgstream/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut, false)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("warned %s", "x")

	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug message should be filtered, got %q", out.String())
	}
	if !strings.Contains(out.String(), "shown 2") {
		t.Errorf("info message missing, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warned x") {
		t.Errorf("warning should go to errOut, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelDebug, &out, &out, false).WithComponent("streamloader")

	log.Debug("Animation ended after %d frames", 3)

	if got := out.String(); !strings.HasPrefix(got, "[streamloader] ") {
		t.Errorf("expected component prefix, got %q", got)
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out, false)

	log.Error("boom")

	if out.Len() != 0 {
		t.Errorf("quiet logger wrote %q", out.String())
	}
}

func TestNoopLogger(t *testing.T) {
	log := NewNoop()
	log.Info("ignored")
	if log.WithComponent("x") != log {
		t.Error("WithComponent should return the same logger")
	}
}
