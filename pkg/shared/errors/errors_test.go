package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1},
		{name: "command error", err: NewCommandError(errors.New("boom"), 2), want: 2},
		{name: "wrapped command error", err: fmt.Errorf("context: %w", NewCommandError(errors.New("boom"), 3)), want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := NewCommandError(errors.New("validation failed"), 2)
	if err.Error() != "validation failed" {
		t.Errorf("Error() = %q, want the underlying message", err.Error())
	}
}
