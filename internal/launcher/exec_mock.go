package launcher

import "context"

// MockCommandRunner is a mock implementation of CommandRunner for testing
type MockCommandRunner struct {
	RunInteractiveFunc func(ctx context.Context, name string, args ...string) error
	GetExitCodeFunc    func(err error) int

	// Calls records every RunInteractive invocation
	Calls [][]string
}

// RunInteractive implements CommandRunner.RunInteractive
func (m *MockCommandRunner) RunInteractive(ctx context.Context, name string, args ...string) error {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunInteractiveFunc != nil {
		return m.RunInteractiveFunc(ctx, name, args...)
	}
	return nil
}

// GetExitCode implements CommandRunner.GetExitCode
func (m *MockCommandRunner) GetExitCode(err error) int {
	if m.GetExitCodeFunc != nil {
		return m.GetExitCodeFunc(err)
	}
	if err != nil {
		return 1
	}
	return 0
}
