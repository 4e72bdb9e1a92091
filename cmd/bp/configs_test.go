package main

import (
	"testing"

	"github.com/bitpack-format/bitpack/field"
	"github.com/bitpack-format/bitpack/schema"
)

func TestParseDocFormat(t *testing.T) {
	tests := []struct {
		in   string
		want docFormat
		bad  bool
	}{
		{in: "json", want: jsonFormat},
		{in: "j", want: jsonFormat},
		{in: "JSON", want: jsonFormat},
		{in: "yaml", want: yamlFormat},
		{in: "y", want: yamlFormat},
		{in: "toml", bad: true},
		{in: "", bad: true},
	}
	for _, tc := range tests {
		got, err := parseDocFormat(tc.in)
		if tc.bad {
			if err == nil {
				t.Errorf("parseDocFormat(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDocFormat(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseDocFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatOptsOverrideBooleans(t *testing.T) {
	cfg := &MainConfig{J: true}
	if !cfg.asJSON() || !cfg.inJSON() {
		t.Fatal("-j alone should select json on both sides")
	}
	y := yamlFormat
	cfg.OutFormat = &y
	if cfg.asJSON() {
		t.Error("-O yaml should win over -j for output")
	}
	if !cfg.inJSON() {
		t.Error("-O must not affect the input side")
	}
	cfg.InFormat = &y
	if cfg.inJSON() {
		t.Error("-I yaml should win over -j for input")
	}
}

func TestLoadSchemaFromRegistry(t *testing.T) {
	s := schema.MustConstruct([]field.Field{
		field.Int("level", 0, 99),
	})
	s.Name = "bp-preregistered"
	if err := schema.Register(s); err != nil {
		t.Fatal(err)
	}

	cfg := &MainConfig{SchemaPath: s.Name}
	got, err := cfg.loadSchema()
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("loadSchema(%q) = %p, want registered schema %p", s.Name, got, s)
	}
}
