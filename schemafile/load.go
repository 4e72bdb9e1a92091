// Package schemafile loads schema documents: declarative field lists
// in YAML or TOML that resolve to a constructed schema.
//
// A document names its schema, optionally defines constants, and lists
// fields in declaration order:
//
//	name: gameConfig
//	consts:
//	  maxPayload: "2**10 - 1"
//	fields:
//	  - name: turnDuration
//	    type: int
//	    min: 1
//	    max: 10
//	  - name: buffer
//	    type: bytes
//	    max: maxPayload
//
// Bounds may be plain numbers or expressions over the constants.
package schemafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/bitpack-format/bitpack/debug"
	"github.com/bitpack-format/bitpack/field"
	"github.com/bitpack-format/bitpack/schema"
)

var ErrDoc = errors.New("invalid schema document")

type doc struct {
	Name   string         `yaml:"name" toml:"name"`
	Consts map[string]any `yaml:"consts" toml:"consts"`
	Fields []fieldDoc     `yaml:"fields" toml:"fields"`
}

type fieldDoc struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
	Min  any    `yaml:"min" toml:"min"`
	Max  any    `yaml:"max" toml:"max"`
}

// Load reads a schema document from path, picking the syntax by file
// extension: .toml is TOML, anything else is YAML.
func Load(path string) (*schema.Schema, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read schema document: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(d)
	}
	return Parse(d)
}

// Parse builds a schema from a YAML schema document.
func Parse(d []byte) (*schema.Schema, error) {
	var sd doc
	if err := yaml.Unmarshal(d, &sd); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDoc, err)
	}
	return build(&sd)
}

// ParseTOML builds a schema from a TOML schema document.
func ParseTOML(d []byte) (*schema.Schema, error) {
	var sd doc
	if err := toml.Unmarshal(d, &sd); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDoc, err)
	}
	return build(&sd)
}

func build(sd *doc) (*schema.Schema, error) {
	env, err := constEnv(sd.Consts)
	if err != nil {
		return nil, err
	}
	specs := make([]field.Field, 0, len(sd.Fields))
	for _, fd := range sd.Fields {
		spec, err := buildField(&fd, env)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	s, err := schema.Construct(specs)
	if err != nil {
		return nil, err
	}
	s.Name = sd.Name
	if debug.Load() {
		debug.Logf("schemafile: loaded %q with %d fields\n", s.Name, len(specs))
	}
	return s, nil
}

func buildField(fd *fieldDoc, env map[string]any) (field.Field, error) {
	var kind field.Kind
	if err := kind.UnmarshalText([]byte(strings.ToLower(fd.Type))); err != nil {
		return field.Field{}, fmt.Errorf("%w: field %q: %w", ErrDoc, fd.Name, err)
	}
	switch kind {
	case field.IntKind:
		min, err := bound(fd.Min, env)
		if err != nil {
			return field.Field{}, fmt.Errorf("%w: field %q: min: %w", ErrDoc, fd.Name, err)
		}
		max, err := bound(fd.Max, env)
		if err != nil {
			return field.Field{}, fmt.Errorf("%w: field %q: max: %w", ErrDoc, fd.Name, err)
		}
		return field.Int(fd.Name, min, max), nil
	case field.BooleanKind:
		if fd.Min != nil || fd.Max != nil {
			return field.Field{}, fmt.Errorf("%w: field %q: bool fields take no bounds", ErrDoc, fd.Name)
		}
		return field.Boolean(fd.Name), nil
	case field.BytesKind:
		if fd.Min != nil {
			return field.Field{}, fmt.Errorf("%w: field %q: bytes fields take no min", ErrDoc, fd.Name)
		}
		max, err := bound(fd.Max, env)
		if err != nil {
			return field.Field{}, fmt.Errorf("%w: field %q: max: %w", ErrDoc, fd.Name, err)
		}
		return field.Bytes(fd.Name, max), nil
	}
	return field.Field{}, fmt.Errorf("%w: field %q: unknown kind", ErrDoc, fd.Name)
}
