// internal/config/config.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is an optional YAML defaults file. Unset keys stay nil so the CLI
// can tell "absent" from a zero value.
//
//	medium1: data/diets/western_diet_gut.qza
//	medium2: data/diets/vmh_high_fiber_agora.qza
//	n: 0.25
//	output: out/medium.csv
//	format: csv
//	precision: 6
type File struct {
	Medium1   *string  `yaml:"medium1"`
	Medium2   *string  `yaml:"medium2"`
	N         *float64 `yaml:"n"`
	Output    *string  `yaml:"output"`
	Format    *string  `yaml:"format"`
	Precision *int     `yaml:"precision"`
}

// Load reads and decodes path. Unknown keys are rejected so typos do not
// silently fall back to defaults.
func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Decode(path, b)
}

// Decode parses YAML bytes; name is used in error messages.
func Decode(name string, b []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}
