package usecase_test

import (
	"context"
	"fmt"
	"sync"
)

type logEntry struct {
	level string
	msg   string
}

// recordingLogger keeps every formatted line so tests can assert severities.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *recordingLogger) add(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg})
}

func (m *recordingLogger) levels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.level)
	}
	return out
}

func (m *recordingLogger) last() logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return logEntry{}
	}
	return m.entries[len(m.entries)-1]
}

func (m *recordingLogger) Debug(ctx context.Context, arg ...any) { m.add("debug", fmt.Sprint(arg...)) }
func (m *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {
	m.add("debug", fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Info(ctx context.Context, arg ...any) { m.add("info", fmt.Sprint(arg...)) }
func (m *recordingLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.add("info", fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Warn(ctx context.Context, arg ...any) { m.add("warn", fmt.Sprint(arg...)) }
func (m *recordingLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.add("warn", fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Error(ctx context.Context, arg ...any) { m.add("error", fmt.Sprint(arg...)) }
func (m *recordingLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.add("error", fmt.Sprintf(template, arg...))
}
func (m *recordingLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *recordingLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *recordingLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *recordingLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
