package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML options file on top of Default(). Unknown keys are rejected.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	opts, err := Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes YAML bytes on top of Default(). Empty input yields Default().
func Parse(data []byte) (Options, error) {
	opts := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("parse yaml: %w", err)
	}
	return opts, nil
}
