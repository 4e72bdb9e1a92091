package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bitpack-format/bitpack/field"
	"github.com/bitpack-format/bitpack/schema"
)

type gameConfig struct {
	TurnDuration int  `bitpack:"turnDuration"`
	Lives        int8 `bitpack:"lives"`
	AllowHyphens bool `bitpack:"allowHyphens"`
	Payload      []byte
	Note         string `bitpack:"note"`
	internal     int
	Skipped      string `bitpack:"-"`
}

func gameSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Construct([]field.Field{
		field.Int("turnDuration", 1, 10),
		field.Int("lives", 1, 5),
		field.Boolean("allowHyphens"),
		field.Bytes("payload", 100),
		field.Bytes("note", 100),
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestMarshal(t *testing.T) {
	in := &gameConfig{
		TurnDuration: 7,
		Lives:        3,
		AllowHyphens: true,
		Payload:      []byte{0x01, 0x02},
		Note:         "hi",
		Skipped:      "nope",
	}
	got, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]field.Value{
		"turnDuration": field.IntValue(7),
		"lives":        field.IntValue(3),
		"allowHyphens": field.BooleanValue(true),
		"payload":      field.BytesValue([]byte{0x01, 0x02}),
		"note":         field.BytesValue([]byte("hi")),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("marshal mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTripThroughSchema(t *testing.T) {
	s := gameSchema(t)
	in := gameConfig{
		TurnDuration: 2,
		Lives:        5,
		AllowHyphens: false,
		Payload:      []byte("hello world"),
		Note:         "n",
	}
	values, err := Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	encoded, err := s.Encode(values)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := s.Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	var out gameConfig
	if err := Unmarshal(decoded, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, cmp.AllowUnexported(gameConfig{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalKindMismatch(t *testing.T) {
	var out gameConfig
	err := Unmarshal(map[string]field.Value{"lives": field.BooleanValue(true)}, &out)
	if err == nil {
		t.Error("expected error storing bool value in int field")
	}
}

func TestMarshalRejectsNonStruct(t *testing.T) {
	if _, err := Marshal(42); err == nil {
		t.Error("expected error for non-struct source")
	}
	if err := Unmarshal(nil, 42); err == nil {
		t.Error("expected error for non-pointer target")
	}
}
