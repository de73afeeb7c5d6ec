package driving

import "context"

// RunnerService replays the demonstration sequence.
type RunnerService interface {
	// Run prints the greeting and each division with its result.
	// It only fails when output cannot be written.
	Run(ctx context.Context) error
}
