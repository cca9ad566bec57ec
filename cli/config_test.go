package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig(strings.NewReader(`
format: json
name: Jaskinia
include_splays: true
viewport_width_mm: 100
`))
	require.NoError(t, err)
	assert.Equal(
		t,
		Config{
			Format:           "json",
			Name:             "Jaskinia",
			IncludeSplays:    true,
			ViewportWidthMM:  100,
			ViewportHeightMM: 80,
		},
		config,
	)

	_, err = ParseConfig(strings.NewReader("format: [unclosed"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	path := filepath.Join(t.TempDir(), "caveconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("template: custom.tmpl\n"), 0644))
	config, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.tmpl", config.Template)
	assert.Equal(t, "survex", config.Format)

	_, err = LoadConfig(path + ".missing")
	assert.Error(t, err)
}
