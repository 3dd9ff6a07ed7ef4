package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer is a thread-safe sink for JSON log lines written in tests.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer for TestLogBuffer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the raw buffer contents.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// GetLogEntries decodes one JSON entry per non-empty line.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Find returns the entries whose msg equals msg.
func (b *TestLogBuffer) Find(msg string) []map[string]interface{} {
	entries, err := b.GetLogEntries()
	if err != nil {
		return nil
	}
	var out []map[string]interface{}
	for _, e := range entries {
		if e[slog.MessageKey] == msg {
			out = append(out, e)
		}
	}
	return out
}

// GetTestLogger creates a debug-level JSON logger writing into a fresh buffer.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()

	logBuf := &TestLogBuffer{}
	handler := slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), logBuf
}

// AssertLogContains fails t unless the raw log output contains content.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	logs := logBuf.String()
	if !strings.Contains(logs, content) {
		t.Errorf("expected log to contain %q\nlogs:\n%s", content, logs)
	}
}

// AssertLoggedAt fails t unless msg was logged at least once, every time at level.
func AssertLoggedAt(t *testing.T, logBuf *TestLogBuffer, level slog.Level, msg string) {
	t.Helper()

	entries := logBuf.Find(msg)
	if len(entries) == 0 {
		t.Errorf("expected a %s entry %q\nlogs:\n%s", level, msg, logBuf.String())
		return
	}
	for _, e := range entries {
		if e[slog.LevelKey] != level.String() {
			t.Errorf("entry %q logged at %v, want %s", msg, e[slog.LevelKey], level)
		}
	}
}
