package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one scripted reply for a MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider serves scripted replies in order and remembers every request
// it saw. Tests script it with the rewrite payloads a real provider would
// return. Safe for concurrent use.
type MockProvider struct {
	mu     sync.Mutex
	script []MockResponse
	next   int
	Calls  []Request
}

func NewMockProvider(script ...MockResponse) *MockProvider {
	return &MockProvider{script: script}
}

// Generate replays the next scripted reply. Running past the end of the
// script behaves like an unreachable provider.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.script) {
		return nil, &ErrProviderUnavailable{}
	}
	scripted := m.script[m.next]
	m.next++

	if scripted.Err != nil {
		return nil, scripted.Err
	}
	return &Response{
		Content:    scripted.Content,
		Usage:      scripted.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse extends the script after construction.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, resp)
}

// CallCount reports how many Generate calls were made so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
