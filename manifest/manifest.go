// Package manifest loads declarative shape manifests from YAML and turns them
// into listed-variant factories. A manifest names a shape, lists its fields,
// and optionally sizes its accumulator pool:
//
//	name: user
//	fields: [id, name, email]
//	pool:
//	  maxSize: 8
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	typebuilder "github.com/noony-serverless/typebuilder"
)

// Manifest is one declared target shape. Duplicate fields collapse at factory
// construction; an empty field list is rejected there with ErrEmptyFieldList.
type Manifest struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
	Pool   Pool     `yaml:"pool"`
}

// Pool carries the optional pool sizing for the manifest's factory.
type Pool struct {
	MaxSize int `yaml:"maxSize"`
}

// Load decodes a single-document manifest.
func Load(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return &m, nil
}

// LoadAll scans a multi-document YAML stream and decodes every manifest in
// document order.
func LoadAll(data []byte) ([]*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*Manifest
	for {
		var m Manifest
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("manifest: %w", err)
		}
		out = append(out, &m)
	}
}

// Factory builds the manifest's factory in the default registry.
func (m *Manifest) Factory(opts ...typebuilder.FactoryOpt) (*typebuilder.Factory, error) {
	return m.FactoryIn(typebuilder.DefaultRegistry(), opts...)
}

// FactoryIn builds the manifest's factory in the given registry. The
// manifest's pool size applies unless an explicit option overrides it.
func (m *Manifest) FactoryIn(reg *typebuilder.Registry, opts ...typebuilder.FactoryOpt) (*typebuilder.Factory, error) {
	opt := typebuilder.FactoryOpt{MaxPoolSize: m.Pool.MaxSize}
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	f, err := reg.NewFactory(m.Fields, opt)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
	}
	return f, nil
}
