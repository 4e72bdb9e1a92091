package main

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/bitpack-format/bitpack/field"
	"github.com/bitpack-format/bitpack/schema"
)

// parseValues interprets a value document against the schema. The
// document is a name-keyed mapping; bytes values are base64 strings.
// The YAML path accepts JSON documents too: JSON is a YAML subset.
func parseValues(s *schema.Schema, d []byte, asJSON bool) (map[string]field.Value, error) {
	var (
		raw map[string]any
		err error
	)
	if asJSON {
		err = json.Unmarshal(d, &raw)
	} else {
		err = yaml.Unmarshal(d, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse value document: %w", err)
	}
	byName := map[string]field.Field{}
	for _, f := range s.Fields() {
		byName[f.Name] = f
	}
	values := make(map[string]field.Value, len(raw))
	for name, v := range raw {
		f, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("value document names unknown field %q", name)
		}
		fv, err := docValue(f, v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		values[name] = fv
	}
	return values, nil
}

func docValue(f field.Field, v any) (field.Value, error) {
	switch f.Kind {
	case field.IntKind:
		n, err := docInt(v)
		if err != nil {
			return field.Value{}, err
		}
		return field.IntValue(n), nil
	case field.BooleanKind:
		b, ok := v.(bool)
		if !ok {
			return field.Value{}, fmt.Errorf("want a boolean, got %T", v)
		}
		return field.BooleanValue(b), nil
	case field.BytesKind:
		s, ok := v.(string)
		if !ok {
			return field.Value{}, fmt.Errorf("want a base64 string, got %T", v)
		}
		d, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return field.Value{}, fmt.Errorf("bad base64: %w", err)
		}
		return field.BytesValue(d), nil
	}
	return field.Value{}, fmt.Errorf("unknown field kind")
}

func docInt(v any) (int32, error) {
	switch n := v.(type) {
	case int:
		if int64(n) < math.MinInt32 || int64(n) > math.MaxInt32 {
			return 0, fmt.Errorf("%d overflows int32", n)
		}
		return int32(n), nil
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("%d overflows int32", n)
		}
		return int32(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("%d overflows int32", n)
		}
		return int32(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return docInt(int64(n))
	}
	return 0, fmt.Errorf("want an integer, got %T", v)
}

func valueDoc(values map[string]field.Value) map[string]any {
	doc := make(map[string]any, len(values))
	for name, v := range values {
		switch v.Kind {
		case field.IntKind:
			doc[name] = v.Int
		case field.BooleanKind:
			doc[name] = v.Bool
		case field.BytesKind:
			doc[name] = base64.StdEncoding.EncodeToString(v.Data)
		}
	}
	return doc
}

// renderValues produces a value document from decoded values. Keys
// come out sorted in either syntax.
func renderValues(values map[string]field.Value, asJSON bool) ([]byte, error) {
	if asJSON {
		return json.MarshalIndent(valueDoc(values), "", "  ")
	}
	return yaml.Marshal(valueDoc(values))
}

// renderValuesJSON is renderValues in the compact form json-patch
// operates on.
func renderValuesJSON(values map[string]field.Value) ([]byte, error) {
	return json.Marshal(valueDoc(values))
}

// writeDoc writes a rendered document with exactly one trailing
// newline.
func writeDoc(w io.Writer, doc []byte) error {
	if len(doc) == 0 || doc[len(doc)-1] != '\n' {
		doc = append(doc, '\n')
	}
	_, err := w.Write(doc)
	return err
}

func readInput(cc *cli.Context, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", args[0], err)
	}
	return d, nil
}

// readBlob reads a packed blob, hex-decoding it when -x is set.
func (cfg *MainConfig) readBlob(cc *cli.Context, args []string) ([]byte, error) {
	d, err := readInput(cc, args)
	if err != nil {
		return nil, err
	}
	if !cfg.X {
		return d, nil
	}
	return hex.DecodeString(strings.TrimSpace(string(d)))
}

func (cfg *MainConfig) readBlobFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	if !cfg.X {
		return d, nil
	}
	return hex.DecodeString(strings.TrimSpace(string(d)))
}

// writeBlob writes a packed blob, hex-encoding it when -x is set.
func (cfg *MainConfig) writeBlob(w io.Writer, blob []byte) error {
	if cfg.X {
		_, err := fmt.Fprintf(w, "%x\n", blob)
		return err
	}
	_, err := w.Write(blob)
	return err
}
