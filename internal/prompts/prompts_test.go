package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultPresets(t *testing.T) {
	p := DefaultPresets()
	assert.Equal(t, "Summarize in bullet points for executives", p.Default)
	assert.Contains(t, p.Presets, p.Default)
	assert.Len(t, p.Presets, 3)
}

func TestLoadPresets_MissingFile(t *testing.T) {
	p, err := LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPresets(), p)
}

func TestLoadPresets(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantDefault string
		wantPresets []string
		wantErr     bool
	}{
		{
			name:        "explicit default listed",
			content:     "default: Action items only\npresets:\n  - Action items only\n  - Decisions made\n",
			wantDefault: "Action items only",
			wantPresets: []string{"Action items only", "Decisions made"},
		},
		{
			name:        "default not listed is prepended",
			content:     "default: One paragraph\npresets:\n  - Decisions made\n",
			wantDefault: "One paragraph",
			wantPresets: []string{"One paragraph", "Decisions made"},
		},
		{
			name:        "missing default uses first preset",
			content:     "presets:\n  - '  Risks  '\n  - ''\n  - Risks\n  - Owners\n",
			wantDefault: "Risks",
			wantPresets: []string{"Risks", "Owners"},
		},
		{
			name:    "no prompts at all",
			content: "presets: []\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			content: "presets: [unclosed\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadPresets(writeFile(t, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDefault, p.Default)
			assert.Equal(t, tt.wantPresets, p.Presets)
		})
	}
}
