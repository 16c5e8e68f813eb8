package execute

import "context"

// FakeRunner records every spec it receives and returns scripted exit codes.
// It implements Runner for tests.
type FakeRunner struct {
	// Calls holds every spec passed to Run, in order.
	Calls []CommandSpec
	// ExitCodes maps an executable name to the exit code its invocations
	// should report. Tools not present in the map exit 0.
	ExitCodes map[string]int
	// Err, when set, is returned by every Run call.
	Err error
}

// Run records the spec and returns the scripted result.
func (f *FakeRunner) Run(_ context.Context, spec CommandSpec) (Result, error) {
	f.Calls = append(f.Calls, spec)
	if f.Err != nil {
		return Result{}, f.Err
	}
	return Result{Args: spec.Args, ExitCode: f.ExitCodes[spec.Tool()]}, nil
}

// CallArgs returns the argv of call i, or nil if out of range.
func (f *FakeRunner) CallArgs(i int) []string {
	if i < 0 || i >= len(f.Calls) {
		return nil
	}
	return f.Calls[i].Args
}
