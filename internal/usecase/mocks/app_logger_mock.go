package mocks

import (
	"fmt"
	"sync"
)

// MockLogger records formatted messages per level.
type MockLogger struct {
	mu     sync.Mutex
	Errors []string
	Infos  []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (l *MockLogger) Debugf(format string, args ...interface{}) {}

func (l *MockLogger) Infof(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Infos = append(l.Infos, fmt.Sprintf(format, args...))
}

func (l *MockLogger) Warnf(format string, args ...interface{}) {}

func (l *MockLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Errors = append(l.Errors, fmt.Sprintf(format, args...))
}

func (l *MockLogger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
