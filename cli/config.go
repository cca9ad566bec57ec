package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		Format           string  `yaml:"format"`
		Name             string  `yaml:"name"`
		Template         string  `yaml:"template"`
		IncludeSplays    bool    `yaml:"include_splays"`
		ViewportWidthMM  float64 `yaml:"viewport_width_mm"`
		ViewportHeightMM float64 `yaml:"viewport_height_mm"`
	}
)

// DefaultConfig matches a PocketTopo screen of roughly 60 by 80 mm.
func DefaultConfig() Config {
	return Config{
		Format:           "survex",
		ViewportWidthMM:  60,
		ViewportHeightMM: 80,
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "LoadConfig error: open %s", path)
	}
	defer file.Close()

	return ParseConfig(file)
}

func ParseConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "ParseConfig error: read")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "ParseConfig error: unmarshal")
	}
	return config, nil
}
