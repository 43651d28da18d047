package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Canned is one scripted response for the mock provider.
type Canned struct {
	Content json.RawMessage
	Err     error
}

// Mock is a deterministic Provider for tests: it replays scripted
// responses in FIFO order and records every request it saw.
type Mock struct {
	mu     sync.Mutex
	script []Canned
	Calls  []Request
}

// NewMock creates a Mock with the given scripted responses.
func NewMock(script ...Canned) *Mock {
	return &Mock{script: script}
}

// Generate pops the next scripted response. An exhausted script yields
// UnavailableError.
func (m *Mock) Generate(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.script) == 0 {
		return nil, &UnavailableError{}
	}
	next := m.script[0]
	m.script = m.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Result{Content: next.Content, Model: "mock"}, nil
}

// ModelID returns "mock".
func (m *Mock) ModelID() string { return "mock" }

// Enqueue appends a scripted response.
func (m *Mock) Enqueue(c Canned) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, c)
}

// CallCount returns how many Generate calls were made.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Purposes returns the Purpose label of every recorded call, in order.
func (m *Mock) Purposes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		out[i] = c.Purpose
	}
	return out
}
