// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
)

// EngineCall records one command issued to [MockEngine], e.g. "loadLooping a.mp4",
// "setLoop false", "seek 20.0".
type EngineCall string

// MockEngine is a test double for [playback.Engine]. It records every command
// in order and returns the configured errors and property values.
type MockEngine struct {
	Calls []EngineCall

	StartErr    error
	LoadErr     error
	LoopErr     error
	PauseErr    error
	SeekErr     error
	PositionErr error

	PositionValue float64
	PausedValue   bool
}

func (m *MockEngine) record(format string, args ...any) {
	m.Calls = append(m.Calls, EngineCall(fmt.Sprintf(format, args...)))
}

func (m *MockEngine) Start(ctx context.Context) error {
	m.record("start")
	return m.StartErr
}

func (m *MockEngine) LoadLooping(path string) error {
	m.record("loadLooping %s", path)
	return m.LoadErr
}

func (m *MockEngine) SetLoop(enabled bool) error {
	m.record("setLoop %t", enabled)
	return m.LoopErr
}

func (m *MockEngine) SetPaused(paused bool) error {
	m.record("setPaused %t", paused)
	return m.PauseErr
}

func (m *MockEngine) Paused() (bool, error) {
	return m.PausedValue, nil
}

func (m *MockEngine) Seek(seconds float64) error {
	m.record("seek %.1f", seconds)
	return m.SeekErr
}

func (m *MockEngine) Position() (float64, error) {
	return m.PositionValue, m.PositionErr
}

func (m *MockEngine) Stop() error {
	m.record("stop")
	return nil
}

// LoadCount returns how many loadLooping commands the engine received.
func (m *MockEngine) LoadCount() int {
	n := 0
	for _, c := range m.Calls {
		if strings.HasPrefix(string(c), "loadLooping") {
			n++
		}
	}
	return n
}

// LastCall returns the most recent recorded command, or "" if none.
func (m *MockEngine) LastCall() EngineCall {
	if len(m.Calls) == 0 {
		return ""
	}
	return m.Calls[len(m.Calls)-1]
}

// AssertCalls fails the test unless the recorded commands match want exactly.
func (m *MockEngine) AssertCalls(t *testing.T, want ...EngineCall) {
	t.Helper()
	if len(m.Calls) != len(want) {
		t.Fatalf("expected %d engine calls, got %d: %v", len(want), len(m.Calls), m.Calls)
	}
	for i := range want {
		if m.Calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], m.Calls[i])
		}
	}
}

// ErrMock is a reusable failure for configuring mock errors.
var ErrMock = errors.New("mock failure")

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
