// Package config reads the optional YAML file that carries default CLI
// settings, so teams can keep generation options next to the schema they
// describe.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks when no -config flag is given.
const DefaultPath = "typegen.yml"

// Config mirrors the CLI flags. Credentials are deliberately absent: the
// admin password comes from the environment or an interactive prompt, never
// from a file checked into the repo.
type Config struct {
	// DB points at the record service's embedded database file.
	DB string `yaml:"db"`
	// JSON points at a JSON schema export.
	JSON string `yaml:"json"`
	// URL points at a running record service.
	URL string `yaml:"url"`
	// Email is the admin identity for the remote path.
	Email string `yaml:"email"`
	// Out is the path the generated definitions are written to.
	Out string `yaml:"out"`
}

// Load reads the YAML config at path. A missing file is only an error when
// explicit is true, so the zero-config case stays silent.
func Load(path string, explicit bool) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config: path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
