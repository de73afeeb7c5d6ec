package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/warp/internal/core/ports/driven"
	"github.com/custodia-labs/warp/internal/core/ports/driving"
	"github.com/custodia-labs/warp/internal/logger"
)

// Ensure RunnerService implements the interface.
var _ driving.RunnerService = (*RunnerService)(nil)

// RunnerService prints the greeting and replays each division in the script.
type RunnerService struct {
	script  driven.ScriptSource
	divider driving.DividerService
	out     io.Writer
}

// NewRunnerService creates a runner writing results to out.
// The divider should share out so its diagnostics interleave with results.
func NewRunnerService(script driven.ScriptSource, divider driving.DividerService, out io.Writer) *RunnerService {
	return &RunnerService{
		script:  script,
		divider: divider,
		out:     out,
	}
}

// Run prints the greeting, then one "divide(a, b) = result" line per call.
func (s *RunnerService) Run(ctx context.Context) error {
	logger.Section("Run")

	script, err := s.script.Load()
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}
	logger.Debug("Loaded script with %d calls", len(script.Calls))

	if _, err := fmt.Fprintln(s.out, script.Greeting); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}

	for i, call := range script.Calls {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := s.divider.Divide(call.A, call.B)
		if _, err := fmt.Fprintf(s.out, "%s = %s\n", call.Expression(), result); err != nil {
			return fmt.Errorf("failed to write call %d: %w", i+1, err)
		}
	}

	logger.Info("Completed %d calls", len(script.Calls))
	return nil
}
