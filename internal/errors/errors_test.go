package errors

import (
	"errors"
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// ConfigError Tests
// -----------------------------------------------------------------------------

func TestNewConfigError(t *testing.T) {
	cause := ErrBadOptionType
	err := NewConfigError("reading test-modules", cause)

	if err.message != "reading test-modules" {
		t.Errorf("message = %q, want %q", err.message, "reading test-modules")
	}
	if err.cause != cause {
		t.Errorf("cause = %v, want %v", err.cause, cause)
	}
}

func TestConfigError_WithMethods(t *testing.T) {
	err := NewConfigError("test", nil).
		WithOption("test-modules").
		WithFile("/proj/pyproject.toml")

	if err.Option != "test-modules" {
		t.Errorf("Option = %q, want %q", err.Option, "test-modules")
	}
	if err.File != "/proj/pyproject.toml" {
		t.Errorf("File = %q, want %q", err.File, "/proj/pyproject.toml")
	}
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "plain",
			err:  NewConfigError("bad config", nil),
			want: "config error: bad config",
		},
		{
			name: "with option",
			err:  NewConfigError("bad config", nil).WithOption("test-modules"),
			want: "config error [option=test-modules]: bad config",
		},
		{
			name: "with cause",
			err:  NewConfigError("bad config", ErrBadOptionType),
			want: "config error: bad config: config option has wrong type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Is(t *testing.T) {
	err := NewConfigError("reading option", ErrBadOptionType)

	if !errors.Is(err, ErrBadOptionType) {
		t.Error("errors.Is(err, ErrBadOptionType) = false, want true")
	}
	if errors.Is(err, ErrUnknownTask) {
		t.Error("errors.Is(err, ErrUnknownTask) = true, want false")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("errors.As(err, *ConfigError) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// TaskError Tests
// -----------------------------------------------------------------------------

func TestTaskError_Error(t *testing.T) {
	err := NewTaskError("lookup failed", ErrUnknownTask).WithTask("lnt")

	want := "task error [task=lnt]: lookup failed: unknown task"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTaskError_Is(t *testing.T) {
	err := NewTaskError("lookup failed", ErrUnknownTask)

	if !errors.Is(err, ErrUnknownTask) {
		t.Error("errors.Is(err, ErrUnknownTask) = false, want true")
	}
	if !IsUnknownTask(err) {
		t.Error("IsUnknownTask(err) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// ToolError Tests
// -----------------------------------------------------------------------------

func TestToolError_Error(t *testing.T) {
	err := NewToolError("spawning linter", ErrToolNotFound).
		WithTool("flake8").
		WithDir("/proj")

	got := err.Error()
	if !strings.Contains(got, "tool=flake8") {
		t.Errorf("Error() = %q, want tool context", got)
	}
	if !strings.Contains(got, "dir=/proj") {
		t.Errorf("Error() = %q, want dir context", got)
	}
	if !errors.Is(err, ErrToolNotFound) {
		t.Error("errors.Is(err, ErrToolNotFound) = false, want true")
	}
}

// -----------------------------------------------------------------------------
// Helper Tests
// -----------------------------------------------------------------------------

func TestIsConfigError(t *testing.T) {
	if !IsConfigError(NewConfigError("x", nil)) {
		t.Error("IsConfigError(ConfigError) = false, want true")
	}
	if !IsConfigError(Wrap(NewConfigError("x", nil), "loading")) {
		t.Error("IsConfigError(wrapped ConfigError) = false, want true")
	}
	if IsConfigError(New("plain")) {
		t.Error("IsConfigError(plain error) = true, want false")
	}
	if IsConfigError(nil) {
		t.Error("IsConfigError(nil) = true, want false")
	}
}

func TestWrap(t *testing.T) {
	base := New("base")

	wrapped := Wrap(base, "context")
	if wrapped.Error() != "context: base" {
		t.Errorf("Wrap() = %q, want %q", wrapped.Error(), "context: base")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base via errors.Is")
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	base := New("base")

	wrapped := Wrapf(base, "running task %s", "lint")
	if wrapped.Error() != "running task lint: base" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}

	if Wrapf(nil, "running task %s", "lint") != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}
