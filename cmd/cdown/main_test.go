package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hammamikhairi/cdown/internal/domain"
	"github.com/hammamikhairi/cdown/internal/logger"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
}

func TestExitCode(t *testing.T) {
	var stderr bytes.Buffer
	tests := []struct {
		err  error
		want int
	}{
		{nil, exitFinished},
		{errQuit, exitQuit},
		{fmt.Errorf("wrapped: %w", errQuit), exitQuit},
		{errors.New("boom"), exitError},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err, &stderr); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
	if !strings.Contains(stderr.String(), "boom") {
		t.Fatalf("stderr = %q, want the error message", stderr.String())
	}
}

func TestListColors(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	if code := execute([]string{"-l"}, &stdout, &stderr); code != exitFinished {
		t.Fatalf("exit = %d, stderr = %q", code, stderr.String())
	}
	for _, name := range []string{"lightblue", "darkgray", "lightcyan"} {
		if !strings.Contains(stdout.String(), name) {
			t.Errorf("color list missing %q", name)
		}
	}
}

func TestInvalidDurationFails(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	code := execute([]string{"--no-sound", "-q", "5 parsecs"}, &stdout, &stderr)
	if code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr.String(), "invalid duration") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestTooManyArgs(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	if code := execute([]string{"1m", "2m"}, &stdout, &stderr); code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
}

func TestRequiresTerminal(t *testing.T) {
	isolate(t)
	var stdout, stderr bytes.Buffer
	// Under go test stdout is not a terminal.
	code := execute([]string{"--no-sound", "-q", "1s"}, &stdout, &stderr)
	if code != exitError {
		t.Fatalf("exit = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr.String(), domain.ErrNotATerminal.Error()) {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestOutcomeError(t *testing.T) {
	log := logger.Nop()
	tests := []struct {
		name    string
		outcome domain.Outcome
		err     error
		want    error
	}{
		{"finished", domain.OutcomeFinished, nil, nil},
		{"quit", domain.OutcomeQuit, nil, errQuit},
		{"cancelled", domain.OutcomeQuit, context.Canceled, errQuit},
		{"display closed", domain.OutcomeQuit, fmt.Errorf("drawing frame: %w", domain.ErrDisplayClosed), errQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeError(tt.outcome, tt.err, log); !errors.Is(got, tt.want) && got != tt.want {
				t.Fatalf("outcomeError = %v, want %v", got, tt.want)
			}
		})
	}

	boom := errors.New("boom")
	if got := outcomeError(domain.OutcomeQuit, boom, log); !errors.Is(got, boom) {
		t.Fatalf("outcomeError = %v, want boom", got)
	}
}

func TestOpenLogDiscardsWhenOff(t *testing.T) {
	isolate(t)
	var stderr bytes.Buffer
	out, closeLog := openLog(logger.LevelOff, "", &stderr)
	defer closeLog()

	if out != io.Discard {
		t.Fatalf("out = %T, want io.Discard", out)
	}
	if _, err := os.Stat(logger.DefaultPath()); !os.IsNotExist(err) {
		t.Fatalf("log file created with logging off: %v", err)
	}
}

func TestOpenLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cdown.log")
	var stderr bytes.Buffer
	out, closeLog := openLog(logger.LevelNormal, path, &stderr)
	fmt.Fprintln(out, "hello")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("log = %q", data)
	}
	if stderr.Len() != 0 {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
