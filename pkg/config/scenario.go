// Package config loads scenario definitions from YAML files, so test
// fixtures can live next to the suites that use them instead of being
// scripted in code.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// File is the root of a scenario YAML file.
type File struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// ScenarioConfig declares one scenario and its mocks. At most one
// scenario in a file may be marked active.
type ScenarioConfig struct {
	Name        string       `yaml:"name"`
	Provider    string       `yaml:"provider"`
	Description string       `yaml:"description,omitempty"`
	Active      bool         `yaml:"active,omitempty"`
	Mocks       []MockConfig `yaml:"mocks"`
}

// MockConfig declares one expected request and its canned response.
type MockConfig struct {
	Method   string            `yaml:"method"`
	Path     string            `yaml:"path"`
	Body     Body              `yaml:"body,omitempty"`
	Headers  map[string]string `yaml:"headers,omitempty"`
	Sequence *int              `yaml:"sequence,omitempty"`
	Response ResponseConfig    `yaml:"response"`
}

// ResponseConfig declares the canned response. Status defaults to 200.
type ResponseConfig struct {
	Status  int               `yaml:"status,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Body    Body              `yaml:"body,omitempty"`
	DelayMS int               `yaml:"delay_ms,omitempty"`
}

// Body accepts either a YAML scalar (used verbatim) or a structured
// node, which is re-encoded as JSON. Writing response bodies as YAML
// mappings keeps scenario files readable.
type Body string

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Body) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*b = Body(s)
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	encoded, err := jsonEncode(v)
	if err != nil {
		return fmt.Errorf("encoding body: %w", err)
	}
	*b = Body(encoded)
	return nil
}

// Parse decodes scenario YAML. Environment variables in ${VAR} form are
// expanded before parsing; unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	if len(data) == 0 {
		return nil, errors.New("empty scenario file")
	}
	expanded := os.Expand(string(data), func(key string) string {
		return os.Getenv(key)
	})

	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a single scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("scenario file not found: %s", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadGlob loads every file matching the pattern and merges their
// scenarios. Supports ** for recursive matching; matches are processed
// in sorted order so merges are deterministic.
func LoadGlob(pattern string) (*File, error) {
	matches, err := expandGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expanding glob pattern: %w", err)
	}
	sort.Strings(matches)

	merged := &File{}
	for _, path := range matches {
		f, err := Load(path)
		if err != nil {
			return nil, err
		}
		merged.Scenarios = append(merged.Scenarios, f.Scenarios...)
	}
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

func expandGlob(pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return doublestar.FilepathGlob(pattern)
	}
	return filepath.Glob(pattern)
}

func (f *File) validate() error {
	seen := make(map[string]bool, len(f.Scenarios))
	activeCount := 0
	for i, sc := range f.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenarios[%d]: missing name", i)
		}
		if sc.Provider == "" {
			return fmt.Errorf("scenarios[%d] (%s): missing provider", i, sc.Name)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenarios[%d]: duplicate name %q", i, sc.Name)
		}
		seen[sc.Name] = true
		if sc.Active {
			activeCount++
		}
		for j, m := range sc.Mocks {
			if m.Method == "" {
				return fmt.Errorf("%s: mocks[%d]: missing method", sc.Name, j)
			}
			if m.Path == "" {
				return fmt.Errorf("%s: mocks[%d]: missing path", sc.Name, j)
			}
		}
	}
	if activeCount > 1 {
		return errors.New("more than one scenario marked active")
	}
	return nil
}
