package git

import (
	"context"
	"strings"
)

// MockRunner records git invocations and replays canned responses. Tests use
// it to drive the ref source and action paths without a real repository.
type MockRunner struct {
	// Responses maps "arg1 arg2 ..." to the canned response for that argv.
	Responses map[string]MockResponse

	// Calls records every argv passed to Run or Try, in order.
	Calls [][]string
}

// MockResponse is the canned outcome for one argv.
type MockResponse struct {
	Output string
	Denied bool // Try reports ok=false
	Err    error
}

// NewMockRunner returns an empty mock. Unknown argv succeeds with no output.
func NewMockRunner() *MockRunner {
	return &MockRunner{Responses: make(map[string]MockResponse)}
}

// Set configures the response for an argv.
func (m *MockRunner) Set(args []string, resp MockResponse) {
	m.Responses[mockKey(args)] = resp
}

// SetOutput configures a successful response with the given stdout.
func (m *MockRunner) SetOutput(args []string, output string) {
	m.Set(args, MockResponse{Output: output})
}

// SetError configures a failing response.
func (m *MockRunner) SetError(args []string, err error) {
	m.Set(args, MockResponse{Err: err})
}

// SetDenied makes Try answer "no" for the argv.
func (m *MockRunner) SetDenied(args []string) {
	m.Set(args, MockResponse{Denied: true})
}

func (m *MockRunner) Run(ctx context.Context, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string(nil), args...))
	resp := m.Responses[mockKey(args)]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Output, nil
}

func (m *MockRunner) Try(ctx context.Context, args ...string) (string, bool, error) {
	m.Calls = append(m.Calls, append([]string(nil), args...))
	resp := m.Responses[mockKey(args)]
	if resp.Err != nil {
		return "", false, resp.Err
	}
	if resp.Denied {
		return resp.Output, false, nil
	}
	return resp.Output, true, nil
}

// CalledWith reports whether any recorded call matches the argv exactly.
func (m *MockRunner) CalledWith(args ...string) bool {
	key := mockKey(args)
	for _, call := range m.Calls {
		if mockKey(call) == key {
			return true
		}
	}
	return false
}

func mockKey(args []string) string {
	return strings.Join(args, " ")
}
