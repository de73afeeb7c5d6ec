package logger

import (
	"bytes"
	"testing"
)

func reset(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(nil)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	reset(t)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := reset(t)
	SetVerbose(true)

	Debug("divide(%d, %d)", 10, 2)

	if got := buf.String(); got != "[DEBUG] divide(10, 2)\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := reset(t)
	SetVerbose(false)

	Debug("dropped")
	Info("dropped")
	Section("dropped")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestInfo_WhenVerbose(t *testing.T) {
	buf := reset(t)
	SetVerbose(true)

	Info("Completed %d calls", 3)

	if got := buf.String(); got != "[INFO] Completed 3 calls\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSection_WhenVerbose(t *testing.T) {
	buf := reset(t)
	SetVerbose(true)

	Section("Run")

	if got := buf.String(); got != "=== Run ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}
