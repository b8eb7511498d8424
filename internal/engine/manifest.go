package engine

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	EngineTypeCommand = "command"
	EngineTypeRemote  = "remote"
)

// Manifest declares the externally configured recognition engines. The
// built-in tesseract engine is toggled by env config instead.
type Manifest struct {
	Engines []ManifestEntry `yaml:"engines" validate:"dive"`
}

type ManifestEntry struct {
	Name       string   `yaml:"name" validate:"required"`
	Type       string   `yaml:"type" validate:"required,oneof=command remote"`
	Command    []string `yaml:"command" validate:"required_if=Type command"`
	OutputGlob string   `yaml:"output_glob"`
	Url        string   `yaml:"url" validate:"required_if=Type remote,omitempty,url"`
	HealthUrl  string   `yaml:"health_url" validate:"omitempty,url"`
	Timeout    string   `yaml:"timeout"`
}

// LoadManifest reads and validates an engine manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engine manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse engine manifest: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid engine manifest: %w", err)
	}

	seen := make(map[string]struct{}, len(m.Engines))
	for _, entry := range m.Engines {
		if _, ok := seen[entry.Name]; ok {
			return nil, fmt.Errorf("invalid engine manifest: duplicate engine %q", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		if entry.Timeout != "" {
			if _, err := time.ParseDuration(entry.Timeout); err != nil {
				return nil, fmt.Errorf("invalid engine manifest: engine %q timeout: %w", entry.Name, err)
			}
		}
	}

	return &m, nil
}

// Build constructs engines from the manifest entries, preserving declaration
// order.
func (m *Manifest) Build() ([]Engine, error) {
	engines := make([]Engine, 0, len(m.Engines))
	for _, entry := range m.Engines {
		var timeout time.Duration
		if entry.Timeout != "" {
			timeout, _ = time.ParseDuration(entry.Timeout)
		}

		switch entry.Type {
		case EngineTypeCommand:
			engines = append(engines, NewCommandEngine(entry.Name, entry.Command, entry.OutputGlob, timeout))
		case EngineTypeRemote:
			engines = append(engines, NewRemoteEngine(entry.Name, entry.Url, entry.HealthUrl, timeout))
		default:
			return nil, fmt.Errorf("unknown engine type %q", entry.Type)
		}
	}
	return engines, nil
}
