package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrTerminal,
		ErrRender,
		ErrInput,
		ErrMetrics,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "terminal error",
			code:       ErrTerminal,
			message:    "sysgauge needs an interactive terminal",
			suggestion: "Run it directly in a terminal, not through a pipe",
		},
		{
			name:       "render error",
			code:       ErrRender,
			message:    "Failed to draw the dashboard",
			suggestion: "",
		},
		{
			name:       "input error",
			code:       ErrInput,
			message:    "Failed to read keyboard input",
			suggestion: "",
		},
		{
			name:       "metrics error",
			code:       ErrMetrics,
			message:    "CPU usage unavailable",
			suggestion: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name          string
		err           *Error
		expectedParts []string
		notExpected   []string
	}{
		{
			name: "message and suggestion",
			err:  New(ErrTerminal, "Not a terminal", "Run sysgauge in a terminal"),
			expectedParts: []string{
				"✗",
				"Not a terminal",
				"Run sysgauge in a terminal",
			},
		},
		{
			name: "cause is included",
			err:  WrapWithCode(fmt.Errorf("write /dev/tty: broken pipe"), ErrRender, "Failed to draw", ""),
			expectedParts: []string{
				"Failed to draw",
				"broken pipe",
			},
		},
		{
			name:          "no suggestion",
			err:           New(ErrInput, "Input failed", ""),
			expectedParts: []string{"Input failed"},
			notExpected:   []string{"\n\n  \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := tt.err.Error()

			for _, part := range tt.expectedParts {
				assert.Contains(t, output, part)
			}
			for _, part := range tt.notExpected {
				assert.NotContains(t, output, part)
			}
		})
	}
}

func TestErrorMessageStructure(t *testing.T) {
	err := WrapWithCode(
		errors.New("read /dev/stdin: input/output error"),
		ErrInput,
		"Lost keyboard input",
		"Restart sysgauge",
	)

	lines := strings.Split(err.Error(), "\n")

	assert.True(t, strings.HasPrefix(lines[0], "✗"))
	assert.Contains(t, lines[0], "Lost keyboard input")
}

func TestWrap(t *testing.T) {
	cause := errors.New("program was killed")
	wrapped := Wrap(cause, "Dashboard stopped")

	require.NotNil(t, wrapped)
	assert.Equal(t, ErrRender, wrapped.Code, "Wrap should default to ErrRender code")
	assert.Equal(t, "Dashboard stopped", wrapped.Message)
	assert.Equal(t, cause, wrapped.Cause)
}

func TestErrorsIsAndAs(t *testing.T) {
	cause := errors.New("specific error")
	wrapped := WrapWithCode(cause, ErrConfig, "Config error", "")

	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, cause, wrapped.Unwrap())

	var sgErr *Error
	require.True(t, errors.As(fmt.Errorf("outer: %w", wrapped), &sgErr))
	assert.Equal(t, ErrConfig, sgErr.Code)
}

func TestIsCode(t *testing.T) {
	err := New(ErrRender, "Render error", "")

	assert.True(t, IsCode(err, ErrRender))
	assert.False(t, IsCode(err, ErrInput))
	assert.True(t, IsCode(fmt.Errorf("wrapped: %w", err), ErrRender))
	assert.False(t, IsCode(errors.New("standard error"), ErrRender))
	assert.False(t, IsCode(nil, ErrRender))
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"metrics error is soft", New(ErrMetrics, "cpu unavailable", ""), false},
		{"render error", New(ErrRender, "draw failed", ""), true},
		{"input error", New(ErrInput, "read failed", ""), true},
		{"terminal error", New(ErrTerminal, "no tty", ""), true},
		{"plain error", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFatal(tt.err))
		})
	}
}
