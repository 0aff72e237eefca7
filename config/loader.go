package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/rzero/errs"
)

// Load reads a YAML configuration file and maps it over Default.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return Parse(path, b)
}

// Parse decodes YAML bytes; path is used only in error messages.
// Unknown keys are rejected.
func Parse(path string, data []byte) (Config, error) {
	var dto YAMLConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config %s: %w: %w", path, errs.ErrInvalidConfig, err)
	}

	return Map(path, dto)
}
