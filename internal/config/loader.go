package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// FileName is the configuration file looked up on the search path.
const FileName = "blockfall.yaml"

// SourceEmbedded names the embedded default file as a config source.
const SourceEmbedded = "embedded"

// Load reads the blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml ->
// ./configs/blockfall.yaml -> embedded default.
// Keys missing from a file keep their default values.
// The second result names the source that was used.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// unsetBuffer marks a debris_buffer the YAML did not set.
const unsetBuffer = math.MinInt

// Parse decodes YAML on top of DefaultConfig and validates the result.
// Unknown keys are rejected. When debris_buffer is omitted, the default is
// clamped below grid.height so every grid of the minimum height is valid.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Rules.DebrisBuffer = unsetBuffer

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if cfg.Rules.DebrisBuffer == unsetBuffer {
		cfg.Rules.DebrisBuffer = min(engine.DefaultDebrisBuffer, max(cfg.Grid.Height-1, 0))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// searchPaths returns the user and local config locations in lookup order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
