package prompts

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInstruction is the instruction prompt a new workspace starts with
const DefaultInstruction = "Summarize in bullet points for executives"

// Presets is the set of instruction prompts offered to the user
type Presets struct {
	Default string   `yaml:"default" json:"default"`
	Presets []string `yaml:"presets" json:"presets"`
}

// DefaultPresets returns the built-in presets
func DefaultPresets() *Presets {
	return &Presets{
		Default: DefaultInstruction,
		Presets: []string{
			DefaultInstruction,
			"Highlight only action items",
			"Create a timeline of events",
		},
	}
}

// LoadPresets reads presets from a YAML file. A missing file yields the
// built-in presets; an empty default falls back to the first preset.
func LoadPresets(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultPresets(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt presets %s: %w", path, err)
	}

	var p Presets
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse prompt presets %s: %w", path, err)
	}

	return p.normalize()
}

// normalize trims entries, drops blanks and makes sure the default is listed
func (p *Presets) normalize() (*Presets, error) {
	out := &Presets{Default: strings.TrimSpace(p.Default)}

	seen := make(map[string]bool)
	for _, preset := range p.Presets {
		preset = strings.TrimSpace(preset)
		if preset == "" || seen[preset] {
			continue
		}
		seen[preset] = true
		out.Presets = append(out.Presets, preset)
	}

	if out.Default == "" {
		if len(out.Presets) == 0 {
			return nil, errors.New("prompt presets file defines no prompts")
		}
		out.Default = out.Presets[0]
	}

	if !seen[out.Default] {
		out.Presets = append([]string{out.Default}, out.Presets...)
	}

	return out, nil
}
