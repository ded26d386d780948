package dist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML shape of an optional config override file.
type fileConfig struct {
	ServerURL string `yaml:"server_url"`
	Format    string `yaml:"format"`
}

// LoadConfig reads a YAML override file and applies it on top of the
// default configuration. Fields absent from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.ServerURL != "" {
		cfg.ServerURL = file.ServerURL
	}
	if file.Format != "" {
		if file.Format != FormatXZ && file.Format != FormatGZ {
			return Config{}, fmt.Errorf("config %s: unsupported format %q (want %q or %q)", path, file.Format, FormatXZ, FormatGZ)
		}
		cfg.Format = file.Format
	}

	return cfg, nil
}
