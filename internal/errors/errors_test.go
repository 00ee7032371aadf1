package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrMissingFrontMatter, ExitUser),
			want: "missing front matter",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "nil underlying error with suggestion",
			err:  NewUserError(nil, "pass a file"),
			want: "pass a file",
		},
		{
			name: "success code with error",
			err:  NewExitError(errors.New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrMissingFrontMatter, ExitUser),
			wantTarget: ErrMissingFrontMatter,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(Wrap(ErrInvalidArgument, "path"), ExitUser),
			wantTarget: ErrInvalidArgument,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrMissingFrontMatter, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrMissingFrontMatter,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrInvalidConfig, "field %s", "format")
	if got, want := err.Error(), "field format: invalid configuration"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrInvalidConfig) {
		t.Error("Is() should find ErrInvalidConfig through Wrapf")
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "nothing %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unknown format %q", "ini")
	if got, want := err.Error(), `unknown format "ini"`; got != want {
		t.Errorf("Newf().Error() = %q, want %q", got, want)
	}
	// Errors carry a stack trace pointing at the caller.
	if detail := fmt.Sprintf("%+v", err); !strings.Contains(detail, "TestNewf") {
		t.Errorf("stack trace does not mention the caller:\n%s", detail)
	}
}

func TestUnwrap(t *testing.T) {
	exitErr := NewExitError(ErrInvalidArgument, ExitUser)
	if got := Unwrap(exitErr); got != ErrInvalidArgument {
		t.Errorf("Unwrap() = %v, want %v", got, ErrInvalidArgument)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", New("boom"), ExitUser},
		{"system error", NewSystemError(New("disk"), ""), ExitSystem},
		{"wrapped exit error", Wrap(NewSystemError(New("disk"), ""), "reading"), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		code int
		want int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUser", ExitUser, 1},
		{"ExitSystem", ExitSystem, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.want {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.want)
			}
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	baseErr := ErrInvalidConfig
	wrappedOnce := fmt.Errorf("parsing output: %w", baseErr)
	wrappedTwice := Wrap(wrappedOnce, "loading config")
	exitErr := NewExitError(wrappedTwice, ExitUser)

	if !Is(exitErr, ErrInvalidConfig) {
		t.Error("Is() should find ErrInvalidConfig through wrapping chain")
	}

	var target *ExitError
	if !As(exitErr, &target) {
		t.Fatal("As() should find ExitError")
	}
	if target.Code != ExitUser {
		t.Errorf("ExitError.Code = %d, want %d", target.Code, ExitUser)
	}

	want := "loading config: parsing output: invalid configuration"
	if got := exitErr.Error(); got != want {
		t.Errorf("ExitError.Error() = %q, want %q", got, want)
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		err := errors.New("user error")
		e := NewUserError(err, "check input")
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "check input" {
			t.Errorf("Suggestion = %q, want 'check input'", e.Suggestion)
		}
	})

	t.Run("NewSystemError", func(t *testing.T) {
		err := errors.New("system error")
		e := NewSystemError(err, "check logs")
		if e.Code != ExitSystem {
			t.Errorf("Code = %d, want %d", e.Code, ExitSystem)
		}
		if e.Suggestion != "check logs" {
			t.Errorf("Suggestion = %q, want 'check logs'", e.Suggestion)
		}
	})

	t.Run("NewConfigError", func(t *testing.T) {
		err := errors.New("config error")
		e := NewConfigError(err)
		if e.Code != ExitUser {
			t.Errorf("Code = %d, want %d", e.Code, ExitUser)
		}
		if e.Suggestion != "Check the config file or run with --config" {
			t.Errorf("Suggestion = %q", e.Suggestion)
		}
	})
}
