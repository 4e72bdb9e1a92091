package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/bitpack-format/bitpack/schema"
	"github.com/bitpack-format/bitpack/schemafile"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='value documents in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='value documents in yaml (default)'"`
	X     bool `cli:"name=x aliases=hex desc='read and write blobs as hex'"`
	Color bool `cli:"name=color desc='force colored output'"`

	InFormat, OutFormat *docFormat

	SchemaPath string
	schema     *schema.Schema

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**docFormat) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseDocFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) schemaOpt(_ *cli.Context, a string) (any, error) {
	cfg.SchemaPath = a
	return nil, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// loadSchema resolves the -s argument once per invocation. A name
// known to the schema registry wins over the filesystem; anything
// else is loaded as a schema document and registered under its
// document name.
func (cfg *MainConfig) loadSchema() (*schema.Schema, error) {
	if cfg.schema != nil {
		return cfg.schema, nil
	}
	if cfg.SchemaPath == "" {
		return nil, fmt.Errorf("%w: -s <schemafile> is required", cli.ErrUsage)
	}
	if s := schema.Lookup(cfg.SchemaPath); s != nil {
		cfg.schema = s
		return s, nil
	}
	s, err := schemafile.Load(cfg.SchemaPath)
	if err != nil {
		return nil, err
	}
	if s.Name != "" {
		// A second load of the same document in one process is fine.
		_ = schema.Register(s)
	}
	cfg.schema = s
	return s, nil
}

// asJSON reports whether output value documents are rendered as JSON;
// -O wins over the -j/-y booleans.
func (cfg *MainConfig) asJSON() bool {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat == jsonFormat
	}
	return cfg.J
}

// inJSON reports whether input value documents are parsed as JSON;
// -I wins over the -j/-y booleans. The YAML path accepts JSON
// documents too, JSON being a YAML subset.
func (cfg *MainConfig) inJSON() bool {
	if cfg.InFormat != nil {
		return *cfg.InFormat == jsonFormat
	}
	return cfg.J
}

func (cfg *MainConfig) colorEnabled(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type EncodeConfig struct {
	*MainConfig
	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig
	Decode *cli.Command
}

type LayoutConfig struct {
	*MainConfig
	Layout *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}
