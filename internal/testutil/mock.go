// Package testutil provides testing utilities for scriptutils.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/agentstation/scriptutils"
)

// MockLogger provides a mock logger for testing.
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]any
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		entries: []LogEntry{},
	}
}

// Debug logs a debug message.
func (l *MockLogger) Debug(ctx context.Context, msg string, keysAndValues ...any) {
	l.log("debug", msg, keysAndValues...)
}

// Info logs an info message.
func (l *MockLogger) Info(ctx context.Context, msg string, keysAndValues ...any) {
	l.log("info", msg, keysAndValues...)
}

// Error logs an error message.
func (l *MockLogger) Error(ctx context.Context, msg string, keysAndValues ...any) {
	l.log("error", msg, keysAndValues...)
}

func (l *MockLogger) log(level, msg string, keysAndValues ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(map[string]any)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}

	l.entries = append(l.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}

// GetEntries returns all log entries.
func (l *MockLogger) GetEntries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// HasEntry checks if a log entry exists.
func (l *MockLogger) HasEntry(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, entry := range l.entries {
		if entry.Level == level && entry.Message == msg {
			return true
		}
	}
	return false
}

// Reset clears all log entries.
func (l *MockLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = []LogEntry{}
}

// CaptureConsole records everything written to a scriptutils.Console.
type CaptureConsole struct {
	mu    sync.Mutex
	calls []ConsoleCall
}

// ConsoleCall is one write to a console channel.
type ConsoleCall struct {
	Channel string
	Args    []any
}

// NewCaptureConsole creates an empty capture.
func NewCaptureConsole() *CaptureConsole {
	return &CaptureConsole{}
}

// Console returns a console with all three channels recording into c.
func (c *CaptureConsole) Console() scriptutils.Console {
	return scriptutils.Console{
		Error: c.channel("error"),
		Info:  c.channel("info"),
		Log:   c.channel("log"),
	}
}

func (c *CaptureConsole) channel(name string) scriptutils.LogFunc {
	return func(args ...any) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.calls = append(c.calls, ConsoleCall{Channel: name, Args: args})
	}
}

// Calls returns all recorded writes.
func (c *CaptureConsole) Calls() []ConsoleCall {
	c.mu.Lock()
	defer c.mu.Unlock()

	calls := make([]ConsoleCall, len(c.calls))
	copy(calls, c.calls)
	return calls
}

// Lines returns each recorded write as "channel: args".
func (c *CaptureConsole) Lines() []string {
	calls := c.Calls()
	lines := make([]string, len(calls))
	for i, call := range calls {
		lines[i] = call.Channel + ": " + fmt.Sprint(call.Args...)
	}
	return lines
}

// Reset clears all recorded writes.
func (c *CaptureConsole) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = nil
}
