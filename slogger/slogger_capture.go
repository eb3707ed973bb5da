package slogger

import "sync"

// Entry is a single captured log message.
type Entry struct {
	Level   string
	Message string
	Fields  []any
}

// CaptureLogger implements the Logger interface and records every message.
// It is intended for use in tests.
type CaptureLogger struct {
	mu      sync.Mutex
	with    []any
	entries *[]Entry
}

// NewCaptureLogger returns a new CaptureLogger instance
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{entries: &[]Entry{}}
}

func (l *CaptureLogger) record(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fields := append(append([]any{}, l.with...), keysAndValues...)
	*l.entries = append(*l.entries, Entry{Level: level, Message: msg, Fields: fields})
}

func (l *CaptureLogger) Debug(msg string, keysAndValues ...any) {
	l.record("debug", msg, keysAndValues)
}

func (l *CaptureLogger) Info(msg string, keysAndValues ...any) {
	l.record("info", msg, keysAndValues)
}

func (l *CaptureLogger) Warn(msg string, keysAndValues ...any) {
	l.record("warn", msg, keysAndValues)
}

func (l *CaptureLogger) Error(msg string, keysAndValues ...any) {
	l.record("error", msg, keysAndValues)
}

func (l *CaptureLogger) With(keysAndValues ...any) Logger {
	return &CaptureLogger{
		with:    append(append([]any{}, l.with...), keysAndValues...),
		entries: l.entries,
	}
}

// Entries returns a copy of all captured entries.
func (l *CaptureLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(*l.entries))
	copy(out, *l.entries)
	return out
}

// Messages returns the captured messages in order.
func (l *CaptureLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(*l.entries))
	for _, e := range *l.entries {
		out = append(out, e.Message)
	}
	return out
}
