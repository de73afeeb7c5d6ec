package script

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/warp/internal/core/domain"
	"github.com/custodia-labs/warp/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ScriptSource = (*Source)(nil)

// demo is the built-in demonstration script.
//
//go:embed demo.toml
var demo []byte

// Source decodes a script from TOML bytes.
type Source struct {
	data []byte
}

// NewSource creates a source reading the built-in demonstration script.
func NewSource() *Source {
	return &Source{data: demo}
}

// NewSourceFromBytes creates a source reading the given TOML document.
func NewSourceFromBytes(data []byte) *Source {
	return &Source{data: data}
}

// Load decodes and validates the script.
func (s *Source) Load() (domain.Script, error) {
	return Parse(s.data)
}

// Parse decodes and validates a TOML script. Unknown keys are rejected.
func Parse(data []byte) (domain.Script, error) {
	var script domain.Script

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&script); err != nil {
		return domain.Script{}, fmt.Errorf("%w: %v", domain.ErrInvalidScript, err)
	}

	if err := script.Validate(); err != nil {
		return domain.Script{}, err
	}
	return script, nil
}
