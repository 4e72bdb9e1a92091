package schema

import (
	"errors"
	"testing"

	"github.com/bitpack-format/bitpack/field"
)

func TestConstructBitWidths(t *testing.T) {
	tests := []struct {
		name string
		spec field.Field
		bits uint
	}{
		{"int 0..2", field.Int("f", 0, 2), 2},
		{"int 1..3", field.Int("f", 1, 3), 2},
		{"int 0..7", field.Int("f", 0, 7), 3},
		{"int 0..8", field.Int("f", 0, 8), 4},
		{"int -5000..5000", field.Int("f", -5000, 5000), 14},
		{"int single valued", field.Int("f", 5, 5), 0},
		{"int full range", field.Int("f", -2147483648, 2147483647), 32},
		{"bool", field.Boolean("f"), 1},
		{"bytes max 0", field.Bytes("f", 0), 0},
		{"bytes max 1", field.Bytes("f", 1), 1},
		{"bytes max 1000", field.Bytes("f", 1000), 10},
		{"bytes max 1023", field.Bytes("f", 1023), 10},
		{"bytes max 1024", field.Bytes("f", 1024), 11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Construct([]field.Field{tc.spec})
			if err != nil {
				t.Fatal(err)
			}
			f := s.Fields()[0]
			if f.Bits != tc.bits {
				t.Errorf("bits = %d, want %d", f.Bits, tc.bits)
			}
			if got, want := f.AlwaysPresent, f.Kind == field.IntKind && tc.bits == 0; got != want {
				t.Errorf("alwaysPresent = %t, want %t", got, want)
			}
		})
	}
}

func TestConstructOrdering(t *testing.T) {
	s, err := Construct([]field.Field{
		field.Bytes("blobA", 10),
		field.Int("a", 0, 3),
		field.Bytes("blobB", 10),
		field.Boolean("b"),
		field.Int("c", 0, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c", "blobA", "blobB"}
	fields := s.Fields()
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, name := range want {
		if fields[i].Name != name {
			t.Errorf("field %d = %q, want %q", i, fields[i].Name, name)
		}
	}
}

func TestConstructMaxByteLength(t *testing.T) {
	tests := []struct {
		name  string
		specs []field.Field
		bits  uint
		bytes int
	}{
		{
			name:  "empty",
			specs: nil,
			bits:  0,
			bytes: 0,
		},
		{
			name:  "single bit",
			specs: []field.Field{field.Boolean("b")},
			bits:  1,
			bytes: 1,
		},
		{
			name: "exact byte",
			specs: []field.Field{
				field.Int("a", 0, 15),
				field.Int("b", 0, 15),
			},
			bits:  8,
			bytes: 1,
		},
		{
			name: "game config",
			specs: []field.Field{
				field.Int("language", 0, 0),
				field.Int("gameMode", 0, 0),
				field.Int("regenChallengeDifficulty", 0, 2),
				field.Int("regenChallenges", 1, 3),
				field.Int("solvesPerSyllable", -5000, 5000),
				field.Int("turnDuration", 1, 10),
				field.Int("startingLives", 1, 5),
				field.Int("maxLives", 1, 5),
				field.Int("syllableDuration", 1, 10),
				field.Boolean("allowHyphensAndApostrophesInSyllables"),
				field.Bytes("buffer", 1000),
			},
			bits:  43,
			bytes: 6,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Construct(tc.specs)
			if err != nil {
				t.Fatal(err)
			}
			if s.TotalBits() != tc.bits {
				t.Errorf("totalBits = %d, want %d", s.TotalBits(), tc.bits)
			}
			if s.MaxByteLength() != tc.bytes {
				t.Errorf("maxByteLength = %d, want %d", s.MaxByteLength(), tc.bytes)
			}
		})
	}
}

func TestConstructRejects(t *testing.T) {
	tests := []struct {
		name  string
		specs []field.Field
	}{
		{"min over max", []field.Field{field.Int("f", 3, 2)}},
		{"negative bytes max", []field.Field{field.Bytes("f", -1)}},
		{"empty name", []field.Field{field.Int("", 0, 1)}},
		{"duplicate name", []field.Field{field.Int("f", 0, 1), field.Boolean("f")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Construct(tc.specs)
			if !errors.Is(err, ErrSchema) {
				t.Errorf("err = %v, want ErrSchema", err)
			}
		})
	}
}
