package llm

import "context"

// Mock is a canned provider for tests.
type Mock struct {
	Response string
	Err      error
	Handler  func(prompt string) string
}

// NewMock creates a mock provider with a fixed response.
func NewMock(response string) *Mock {
	return &Mock{Response: response}
}

func (m *Mock) Name() string  { return "mock" }
func (m *Mock) Model() string { return "mock-model" }

// Generate returns the canned error, the handler's output, or the fixed
// response, in that order of precedence.
func (m *Mock) Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Handler != nil {
		return m.Handler(prompt), nil
	}
	return m.Response, nil
}
