// Package venuetype holds the per-type field configuration for venues and
// business profiles and checks submitted details against it.
package venuetype

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// FieldType selects how a detail value is entered and checked.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldCheckbox    FieldType = "checkbox"
	FieldTime        FieldType = "time"
	FieldEmail       FieldType = "email"
	FieldTel         FieldType = "tel"
	FieldURL         FieldType = "url"
)

func (t FieldType) valid() bool {
	switch t {
	case FieldText, FieldTextarea, FieldNumber, FieldSelect, FieldMultiselect,
		FieldCheckbox, FieldTime, FieldEmail, FieldTel, FieldURL:
		return true
	}
	return false
}

// Field is one configured detail. Min and Max bound numbers, and bound the
// length of text and textarea values.
type Field struct {
	Name        string    `yaml:"name" json:"name"`
	Label       string    `yaml:"label" json:"label"`
	Type        FieldType `yaml:"type" json:"type"`
	Required    bool      `yaml:"required" json:"required"`
	Options     []string  `yaml:"options" json:"options,omitempty"`
	Min         *float64  `yaml:"min" json:"min,omitempty"`
	Max         *float64  `yaml:"max" json:"max,omitempty"`
	Placeholder string    `yaml:"placeholder" json:"placeholder,omitempty"`
}

// Config is the field set for one venue type.
type Config struct {
	Type       string   `yaml:"type" json:"type"`
	Label      string   `yaml:"label" json:"label"`
	PriceUnits []string `yaml:"price_units" json:"price_units"`
	Fields     []Field  `yaml:"fields" json:"fields"`
}

func (c *Config) field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Registry is an immutable, ordered set of type configs.
type Registry struct {
	types []Config
	index map[string]int
}

//go:embed venuetypes.yaml
var defaultConfig []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded configuration.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := Load(defaultConfig)
		if err != nil {
			panic(fmt.Sprintf("venuetype: embedded config: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Load parses a YAML document of the form `types: [...]`.
func Load(data []byte) (*Registry, error) {
	var doc struct {
		Types []Config `yaml:"types"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse venue types: %w", err)
	}

	r := &Registry{types: doc.Types, index: make(map[string]int, len(doc.Types))}
	for i, c := range doc.Types {
		if c.Type == "" {
			return nil, fmt.Errorf("venue type #%d has no name", i)
		}
		if _, dup := r.index[c.Type]; dup {
			return nil, fmt.Errorf("venue type %q declared twice", c.Type)
		}
		seen := map[string]bool{}
		for _, f := range c.Fields {
			if !f.Type.valid() {
				return nil, fmt.Errorf("venue type %q: field %q has unknown type %q", c.Type, f.Name, f.Type)
			}
			if seen[f.Name] {
				return nil, fmt.Errorf("venue type %q: field %q declared twice", c.Type, f.Name)
			}
			seen[f.Name] = true
			if (f.Type == FieldSelect || f.Type == FieldMultiselect) && len(f.Options) == 0 {
				return nil, fmt.Errorf("venue type %q: field %q needs options", c.Type, f.Name)
			}
		}
		r.index[c.Type] = i
	}
	return r, nil
}

// Types returns every config in declaration order.
func (r *Registry) Types() []Config {
	out := make([]Config, len(r.types))
	copy(out, r.types)
	return out
}

// Lookup returns the config for venueType.
func (r *Registry) Lookup(venueType string) (Config, bool) {
	i, ok := r.index[venueType]
	if !ok {
		return Config{}, false
	}
	return r.types[i], true
}

// Names returns the known type names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.types))
	for i, c := range r.types {
		names[i] = c.Type
	}
	return names
}
