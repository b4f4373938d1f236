package runner

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed expected.yaml
var expectedYAML []byte

// Expectation is the output one script must print.
type Expectation struct {
	Name   string `yaml:"name"`
	Output string `yaml:"output"`
}

type manifestDisk struct {
	Scripts []Expectation `yaml:"scripts"`
}

// Expected returns the embedded manifest keyed by script name.
func Expected() (map[string]string, error) {
	return ReadExpectations(bytes.NewReader(expectedYAML))
}

// ReadExpectations decodes a manifest keyed by script name.
func ReadExpectations(r io.Reader) (map[string]string, error) {
	var raw manifestDisk
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("expectations: parse: %w", err)
	}

	expected := make(map[string]string, len(raw.Scripts))
	for _, e := range raw.Scripts {
		if e.Name == "" {
			return nil, fmt.Errorf("expectations: entry without a name")
		}
		if _, dup := expected[e.Name]; dup {
			return nil, fmt.Errorf("expectations: duplicate entry %q", e.Name)
		}
		expected[e.Name] = e.Output
	}
	return expected, nil
}

// WriteExpectations encodes entries as a manifest in the given order.
func WriteExpectations(w io.Writer, entries []Expectation) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(manifestDisk{Scripts: entries}); err != nil {
		return fmt.Errorf("expectations: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("expectations: encoder close: %w", err)
	}
	return nil
}
