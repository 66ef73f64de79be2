package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/snifftrap/internal/cli"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "no error", err: nil, want: cli.ExitSuccess},
		{name: "violations found", err: cli.ErrViolationsFound, want: cli.ExitViolations},
		{
			name: "wrapped violations found",
			err:  fmt.Errorf("check: %w", cli.ErrViolationsFound),
			want: cli.ExitViolations,
		},
		{name: "any other failure", err: errors.New("boom"), want: cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}
