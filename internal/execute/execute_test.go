package execute

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/summonkit/summon-python/internal/errors"
)

func TestExecRunner_MissingExecutable(t *testing.T) {
	runner := NewExecRunner(nil)

	_, err := runner.Run(context.Background(), CommandSpec{
		Args: []string{"definitely-not-a-real-tool-xyz"},
	})
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
	if !errors.Is(err, errors.ErrToolNotFound) {
		t.Errorf("error = %v, want ErrToolNotFound", err)
	}

	var toolErr *errors.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatal("expected *errors.ToolError")
	}
	if toolErr.Tool != "definitely-not-a-real-tool-xyz" {
		t.Errorf("Tool = %q", toolErr.Tool)
	}
}

func TestExecRunner_EmptyCommand(t *testing.T) {
	runner := NewExecRunner(nil)

	_, err := runner.Run(context.Background(), CommandSpec{})
	if !errors.Is(err, errors.ErrToolStartFailed) {
		t.Errorf("error = %v, want ErrToolStartFailed", err)
	}
}

func TestExecRunner_StartFailureKeepsCause(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	runner := NewExecRunner(nil)

	badDir := filepath.Join(t.TempDir(), "missing-workdir")
	_, err := runner.Run(context.Background(), CommandSpec{
		Args: []string{"sh", "-c", "true"},
		Dir:  badDir,
	})
	if err == nil {
		t.Fatal("expected error for nonexistent working directory")
	}
	if !errors.Is(err, errors.ErrToolStartFailed) {
		t.Errorf("error = %v, want ErrToolStartFailed", err)
	}
	// The OS-level diagnostic must reach the user, not just the sentinel.
	if !strings.Contains(err.Error(), "missing-workdir") {
		t.Errorf("error = %v, want underlying chdir failure in message", err)
	}
}

func TestExecRunner_ExitCodeSurfacedVerbatim(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	runner := NewExecRunner(nil)

	res, err := runner.Run(context.Background(), CommandSpec{
		Args: []string{"sh", "-c", "exit 2"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", res.ExitCode)
	}
	if res.Ok() {
		t.Error("Ok() = true for exit 2")
	}
}

func TestExecRunner_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on sh")
	}

	runner := NewExecRunner(nil)

	res, err := runner.Run(context.Background(), CommandSpec{
		Args: []string{"sh", "-c", "true"},
		Dir:  t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !res.Ok() {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
}

func TestFakeRunner(t *testing.T) {
	fake := &FakeRunner{ExitCodes: map[string]int{"pylint": 4}}

	res, err := fake.Run(context.Background(), CommandSpec{Args: []string{"flake8", "pkg"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("flake8 ExitCode = %d, want 0", res.ExitCode)
	}

	res, err = fake.Run(context.Background(), CommandSpec{Args: []string{"pylint", "-r", "n", "pkg"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.ExitCode != 4 {
		t.Errorf("pylint ExitCode = %d, want 4", res.ExitCode)
	}

	if len(fake.Calls) != 2 {
		t.Fatalf("Calls = %d, want 2", len(fake.Calls))
	}
	if got := fake.CallArgs(1); len(got) != 4 || got[0] != "pylint" {
		t.Errorf("CallArgs(1) = %v", got)
	}
	if fake.CallArgs(5) != nil {
		t.Error("CallArgs out of range should return nil")
	}
}

func TestFirstFailure(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    int
	}{
		{"empty", nil, 0},
		{"all ok", []Result{{ExitCode: 0}, {ExitCode: 0}}, 0},
		{"first failure wins", []Result{{ExitCode: 0}, {ExitCode: 2}, {ExitCode: 1}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstFailure(tt.results); got != tt.want {
				t.Errorf("FirstFailure() = %d, want %d", got, tt.want)
			}
		})
	}
}
