package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/JPM1118/frogframes/internal/sprites"
)

// MockSource implements sprites.Source for testing.
// Names missing from Frames fail with an error wrapping os.ErrNotExist.
type MockSource struct {
	mu          sync.Mutex
	Frames      map[string]string
	Errs        map[string]error
	Delays      map[string]time.Duration
	calls       map[string]int
	inFlight    int
	maxInFlight int
}

var _ sprites.Source = (*MockSource)(nil)

func (m *MockSource) Fetch(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
	m.inFlight++
	if m.inFlight > m.maxInFlight {
		m.maxInFlight = m.inFlight
	}
	delay := m.Delays[name]
	m.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight--

	if err := m.Errs[name]; err != nil {
		return "", err
	}
	text, ok := m.Frames[name]
	if !ok {
		return "", fmt.Errorf("%s: %w", name, os.ErrNotExist)
	}
	return text, nil
}

// SetFrame updates the content for name in a thread-safe manner.
func (m *MockSource) SetFrame(name, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Frames == nil {
		m.Frames = make(map[string]string)
	}
	m.Frames[name] = text
}

// SetErr makes fetches of name fail with err. A nil err clears it.
func (m *MockSource) SetErr(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Errs == nil {
		m.Errs = make(map[string]error)
	}
	if err == nil {
		delete(m.Errs, name)
		return
	}
	m.Errs[name] = err
}

// Calls returns the total number of Fetch calls.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}

// CallsFor returns the number of Fetch calls for name.
func (m *MockSource) CallsFor(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

// MaxInFlight returns the highest number of concurrent Fetch calls seen.
func (m *MockSource) MaxInFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.maxInFlight
}
