// Package clip writes converted values to a clipboard. Writes are fire and
// forget: failures are logged, never returned.
package clip

import (
	"sync"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// Writer accepts clipboard content. fyne.Clipboard satisfies it.
type Writer interface {
	SetContent(content string)
}

// System writes to the operating system clipboard.
type System struct {
	log   *zap.Logger
	write func(string) error
}

// NewSystem returns a writer backed by the OS clipboard.
func NewSystem(log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	return &System{log: log, write: clipboard.WriteAll}
}

// Available reports whether a clipboard utility was found on this system.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// SetContent implements Writer.
func (s *System) SetContent(content string) {
	if err := s.write(content); err != nil {
		s.log.Debug("Clipboard write failed", zap.String("content", content), zap.Error(err))
		return
	}
	s.log.Debug("Copied to clipboard", zap.String("content", content))
}

// Memory keeps the last written content. It is used when copying is disabled
// and in tests.
type Memory struct {
	mu      sync.Mutex
	content string
	writes  int
}

// SetContent implements Writer.
func (m *Memory) SetContent(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.content = content
	m.writes++
}

// Content returns the last written content.
func (m *Memory) Content() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// Writes returns how many times SetContent was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
