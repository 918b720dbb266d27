package git

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockCall records one invocation seen by MockRunner.
type MockCall struct {
	Program     string
	Args        []string
	Opts        RunOptions
	Interactive bool
}

type mockResponse struct {
	result CommandResult
	err    error
}

// MockRunner is a Runner for tests. Responses are registered per exact
// argument vector; unregistered commands exit 1 with an explanatory stderr.
type MockRunner struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	calls     []MockCall
}

var _ Runner = (*MockRunner)(nil)

// NewMockRunner creates a new MockRunner instance.
func NewMockRunner() *MockRunner {
	return &MockRunner{responses: make(map[string]mockResponse)}
}

// On registers the result returned when program is run with exactly args.
func (m *MockRunner) On(result CommandResult, err error, program string, args ...string) *MockRunner {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[mockKey(program, args)] = mockResponse{result: result, err: err}
	return m
}

// OnGit registers a successful git invocation with the given stdout.
func (m *MockRunner) OnGit(stdout string, args ...string) *MockRunner {
	return m.On(CommandResult{Stdout: stdout}, nil, "git", args...)
}

// OnGitFail registers a failing git invocation.
func (m *MockRunner) OnGitFail(exitCode int, stderr string, args ...string) *MockRunner {
	return m.On(CommandResult{ExitCode: exitCode, Stderr: stderr}, nil, "git", args...)
}

// Run implements Runner.
func (m *MockRunner) Run(_ context.Context, program string, args []string, opts RunOptions) (CommandResult, error) {
	return m.lookup(MockCall{Program: program, Args: args, Opts: opts})
}

// RunInteractive implements Runner. Registered stdout and stderr are written
// to the writers in opts when present.
func (m *MockRunner) RunInteractive(_ context.Context, program string, args []string, opts RunOptions) (int, error) {
	result, err := m.lookup(MockCall{Program: program, Args: args, Opts: opts, Interactive: true})
	if opts.Stdout != nil && result.Stdout != "" {
		_, _ = fmt.Fprint(opts.Stdout, result.Stdout)
	}
	if opts.Stderr != nil && result.Stderr != "" {
		_, _ = fmt.Fprint(opts.Stderr, result.Stderr)
	}
	return result.ExitCode, err
}

func (m *MockRunner) lookup(call MockCall) (CommandResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call.Args = append([]string(nil), call.Args...)
	m.calls = append(m.calls, call)

	resp, ok := m.responses[mockKey(call.Program, call.Args)]
	if !ok {
		return CommandResult{
			ExitCode: 1,
			Stderr:   "mock: unexpected command: " + DisplayCommand(call.Program, call.Args),
		}, nil
	}
	return resp.result, resp.err
}

// Calls returns every recorded invocation in order.
func (m *MockRunner) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// CalledWith reports whether program was run with exactly args.
func (m *MockRunner) CalledWith(program string, args ...string) bool {
	key := mockKey(program, args)
	for _, c := range m.Calls() {
		if mockKey(c.Program, c.Args) == key {
			return true
		}
	}
	return false
}

// Reset clears registered responses and recorded calls.
func (m *MockRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = make(map[string]mockResponse)
	m.calls = nil
}

func mockKey(program string, args []string) string {
	return program + "\x00" + strings.Join(args, "\x00")
}
