package driven

import "github.com/custodia-labs/warp/internal/core/domain"

// ScriptSource provides the demonstration script the runner replays.
type ScriptSource interface {
	// Load returns a validated script.
	Load() (domain.Script, error)
}
