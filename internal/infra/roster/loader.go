// Package roster loads lists of people to greet from YAML files.
package roster

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// ErrEmptyRoster is returned when a roster file contains no people
var ErrEmptyRoster = errors.New("roster: no people listed")

// ErrMultipleDocuments is returned when a roster file holds more than one YAML document
var ErrMultipleDocuments = errors.New("roster: expected a single YAML document")

// Entry is a single person in a roster. Platform is optional.
type Entry struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Platform  string `yaml:"platform,omitempty"`
}

type document struct {
	People []Entry `yaml:"people"`
}

// Load reads and parses the roster at path
func Load(fs afero.Fs, path string) ([]Entry, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("roster: read: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Fail on unknown fields
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyRoster
		}
		return nil, fmt.Errorf("roster: parse: %w", err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrMultipleDocuments
	}

	if len(doc.People) == 0 {
		return nil, ErrEmptyRoster
	}
	return doc.People, nil
}
