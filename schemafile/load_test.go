package schemafile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitpack-format/bitpack/field"
)

const yamlDoc = `
name: gameConfig
consts:
  maxLives: 5
  maxPayload: "2**10 - 1"
fields:
  - name: language
    type: int
    min: 0
    max: 0
  - name: turnDuration
    type: int
    min: 1
    max: 10
  - name: lives
    type: int
    min: 1
    max: maxLives
  - name: solves
    type: int
    min: -5000
    max: 5000
  - name: allowHyphens
    type: bool
  - name: buffer
    type: bytes
    max: maxPayload
`

func TestParseYAML(t *testing.T) {
	s, err := Parse([]byte(yamlDoc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "gameConfig" {
		t.Errorf("name = %q, want gameConfig", s.Name)
	}
	wantBits := map[string]uint{
		"language":     0,
		"turnDuration": 4,
		"lives":        3,
		"solves":       14,
		"allowHyphens": 1,
		"buffer":       10,
	}
	fields := s.Fields()
	if len(fields) != len(wantBits) {
		t.Fatalf("got %d fields, want %d", len(fields), len(wantBits))
	}
	for _, f := range fields {
		if f.Bits != wantBits[f.Name] {
			t.Errorf("field %q: bits = %d, want %d", f.Name, f.Bits, wantBits[f.Name])
		}
	}
	if last := fields[len(fields)-1]; last.Kind != field.BytesKind {
		t.Errorf("last field = %v, want bytes", last.Kind)
	}
}

func TestParseTOML(t *testing.T) {
	tomlDoc := `
name = "sensor"

[consts]
maxReading = "2**12"

[[fields]]
name = "reading"
type = "int"
min = 0
max = "maxReading"

[[fields]]
name = "fault"
type = "bool"
`
	s, err := ParseTOML([]byte(tomlDoc))
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "sensor" {
		t.Errorf("name = %q, want sensor", s.Name)
	}
	if got := s.Fields()[0].Bits; got != 13 {
		t.Errorf("reading bits = %d, want 13", got)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "gameConfig" {
		t.Errorf("name = %q, want gameConfig", s.Name)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "unknown kind",
			in:   "fields:\n  - name: f\n    type: float\n    min: 0\n    max: 1\n",
		},
		{
			name: "missing int bounds",
			in:   "fields:\n  - name: f\n    type: int\n",
		},
		{
			name: "bounds on bool",
			in:   "fields:\n  - name: f\n    type: bool\n    min: 0\n    max: 1\n",
		},
		{
			name: "min on bytes",
			in:   "fields:\n  - name: f\n    type: bytes\n    min: 1\n    max: 10\n",
		},
		{
			name: "fractional bound",
			in:   "fields:\n  - name: f\n    type: int\n    min: 0\n    max: 1.5\n",
		},
		{
			name: "bad expression",
			in:   "fields:\n  - name: f\n    type: int\n    min: 0\n    max: nope +\n",
		},
		{
			// Powers of two are spelled 2**n; the expression language
			// has no bit-shift operator.
			name: "shift operator",
			in:   "fields:\n  - name: f\n    type: int\n    min: 0\n    max: 1 << 4\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			if !errors.Is(err, ErrDoc) {
				t.Errorf("err = %v, want ErrDoc", err)
			}
		})
	}
}
