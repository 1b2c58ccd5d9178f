package should

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ogzhanolguncu/shouldbe/highlight"
	"github.com/ogzhanolguncu/shouldbe/inspect"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Inspect   inspect.Config   `yaml:"inspect"`
	Highlight highlight.Config `yaml:"highlight"`

	// DisableSource stops failures from reading the caller's source file.
	// Unlabelled failures then use the placeholder context.
	DisableSource bool `yaml:"disable_source"`

	// Logger receives debug records about context resolution. Defaults to a
	// no-op logger.
	Logger *zap.Logger `yaml:"-"`
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// DefaultConfig returns the configuration used by a plain T.
func DefaultConfig() Config {
	return Config{
		Inspect: inspect.Config{
			MultilineThreshold: inspect.DefaultMultilineThreshold,
			MaxDepth:           inspect.DefaultMaxDepth,
		},
		Highlight: highlight.Config{
			MaxElements: highlight.DefaultMaxElements,
			Marker:      highlight.DefaultMarker,
			TextContext: 1,
		},
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their DefaultConfig values; unknown fields are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return config, nil
}
