package schema

import (
	"github.com/bitpack-format/bitpack/bitio"
	"github.com/bitpack-format/bitpack/debug"
	"github.com/bitpack-format/bitpack/field"
)

// Decode unpacks a byte sequence produced by Encode against the same
// schema. Bytes values in the result alias data; callers who outlive
// data must copy them.
func (s *Schema) Decode(data []byte) (map[string]field.Value, error) {
	r := bitio.NewReader(data[:min(len(data), s.maxByteLength)])
	values := make(map[string]field.Value, len(s.fields))
	cursor := s.maxByteLength

	for _, f := range s.fields {
		if f.AlwaysPresent {
			values[f.Name] = field.IntValue(f.Min)
			continue
		}
		if !r.CanRead(f.Bits) {
			return nil, &UnderrunError{Field: f.Name, Need: f.Bits}
		}
		switch f.Kind {
		case field.IntKind:
			values[f.Name] = field.IntValue(int32(int64(r.Read(f.Bits)) + int64(f.Min)))
		case field.BooleanKind:
			values[f.Name] = field.BooleanValue(r.Read(1) == 1)
		case field.BytesKind:
			length := int(r.Read(f.Bits))
			if length > len(data)-cursor {
				return nil, &LengthError{Field: f.Name, Length: length, Remaining: len(data) - cursor}
			}
			values[f.Name] = field.BytesValue(data[cursor : cursor+length])
			cursor += length
		}
	}
	if debug.Decode() {
		debug.Logf("decode: %d bytes -> %d fields\n", len(data), len(values))
	}
	return values, nil
}
