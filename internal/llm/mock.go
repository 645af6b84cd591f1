package llm

import (
	"context"
	"strings"
	"sync"
)

// MockGenerator is a canned-response generator for tests and offline
// development. Responses are matched by substring against the prompt;
// unmatched prompts return Fallback.
type MockGenerator struct {
	mu        sync.Mutex
	Responses map[string]string
	Fallback  string
	Err       error
	Calls     []MockCall
}

// MockCall records one Generate invocation.
type MockCall struct {
	Prompt       string
	SystemPrompt string
}

// NewMockGenerator returns a generator that answers every prompt with fallback.
func NewMockGenerator(fallback string) *MockGenerator {
	return &MockGenerator{Fallback: fallback}
}

func (m *MockGenerator) Generate(ctx context.Context, prompt, systemPrompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Prompt: prompt, SystemPrompt: systemPrompt})
	if m.Err != nil {
		return "", m.Err
	}
	for needle, response := range m.Responses {
		if strings.Contains(prompt, needle) {
			return response, nil
		}
	}
	if m.Fallback == "" {
		return emptyResponseFallback, nil
	}
	return m.Fallback, nil
}

func (m *MockGenerator) Close() error {
	return nil
}
