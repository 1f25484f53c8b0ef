// Package clip puts selection text on a clipboard
package clip

import (
	"errors"
	"sync"

	"golang.design/x/clipboard"
)

// ErrUnavailable is returned when no system clipboard can be reached
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard accepts text copied from the table
type Clipboard interface {
	WriteText(text string) error
}

// System writes to the desktop clipboard. Initialization is attempted
// once, on first use.
type System struct {
	once sync.Once
	ok   bool
}

// NewSystem returns a clipboard backed by the host
func NewSystem() *System {
	return &System{}
}

// Available initializes the clipboard if needed and reports success
func (s *System) Available() bool {
	s.once.Do(func() {
		s.ok = clipboard.Init() == nil
	})
	return s.ok
}

// WriteText replaces the clipboard contents with text
func (s *System) WriteText(text string) error {
	if !s.Available() {
		return ErrUnavailable
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// Memory keeps the last copied text in process
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

// WriteText stores text
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	m.text = text
	m.n++
	m.mu.Unlock()
	return nil
}

// Text returns the last written text
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText was called
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Fallback tries Primary and falls back to Secondary when it is unavailable
type Fallback struct {
	Primary   Clipboard
	Secondary Clipboard
}

// WriteText writes to Primary, or to Secondary on ErrUnavailable
func (f Fallback) WriteText(text string) error {
	err := f.Primary.WriteText(text)
	if errors.Is(err, ErrUnavailable) && f.Secondary != nil {
		if serr := f.Secondary.WriteText(text); serr != nil {
			return serr
		}
		return err
	}
	return err
}
