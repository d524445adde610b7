package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/paramguard/pkg/validator"
)

// Manifest maps handler names to their declared parameter rules.
//
// Example document:
//
//	handlers:
//	  users.show:
//	    - kind: long
//	      name: id
//	      min: 1
//	      max: 9999999
//	  users.search:
//	    - kind: parameter
//	      name: q
//	      required: false
//	      matches: "[a-z ]+"
type Manifest struct {
	Handlers map[string][]Descriptor `yaml:"handlers"`
}

// LoadManifest decodes a manifest. Unknown fields are rejected.
func LoadManifest(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &Manifest{Handlers: map[string][]Descriptor{}}, nil
		}
		return nil, errors.Join(ErrFailedToParseManifest, err)
	}

	for handler, descriptors := range m.Handlers {
		for i, d := range descriptors {
			if strings.TrimSpace(string(d.Kind)) == "" {
				return nil, fmt.Errorf("%w: %s: rule %d has no kind", ErrFailedToParseManifest, handler, i)
			}
		}
	}
	if m.Handlers == nil {
		m.Handlers = map[string][]Descriptor{}
	}
	return &m, nil
}

// LoadManifestFile reads and decodes the manifest at path.
func LoadManifestFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseManifest, err)
	}
	return LoadManifest(bytes.NewReader(data))
}

// Names returns the declared handler names, sorted.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.Handlers))
	for name := range m.Handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Chain builds the chain declared for handler using reg.
func (m *Manifest) Chain(reg *Registry, handler string) (*validator.Chain, error) {
	descriptors, ok := m.Handlers[handler]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHandler, handler)
	}
	return reg.Build(descriptors...)
}
