package schema

import (
	"github.com/bitpack-format/bitpack/bitio"
	"github.com/bitpack-format/bitpack/debug"
	"github.com/bitpack-format/bitpack/field"
)

// Encode packs values into a byte sequence: the fixed-width region
// first, then each bytes payload in wire order. One entry is required
// per field that is not always-present; always-present fields encode to
// zero bits whether or not they appear in values.
func (s *Schema) Encode(values map[string]field.Value) ([]byte, error) {
	w := bitio.NewWriter(s.maxByteLength)
	var payloads [][]byte

	for _, f := range s.fields {
		if f.AlwaysPresent {
			continue
		}
		v, ok := values[f.Name]
		if !ok {
			return nil, &MissingValueError{Field: f.Name}
		}
		if v.Kind != f.Kind {
			return nil, &TypeMismatchError{Field: f.Name, Want: f.Kind, Got: v.Kind}
		}
		switch f.Kind {
		case field.IntKind:
			if v.Int < f.Min || v.Int > f.Max {
				return nil, &RangeError{
					Field: f.Name,
					Value: int64(v.Int),
					Min:   int64(f.Min),
					Max:   int64(f.Max),
				}
			}
			w.Write(uint64(int64(v.Int)-int64(f.Min)), f.Bits)
		case field.BooleanKind:
			var bit uint64
			if v.Bool {
				bit = 1
			}
			w.Write(bit, 1)
		case field.BytesKind:
			if int64(len(v.Data)) > int64(f.Max) {
				return nil, &RangeError{
					Field: f.Name,
					Value: int64(len(v.Data)),
					Min:   0,
					Max:   int64(f.Max),
				}
			}
			w.Write(uint64(len(v.Data)), f.Bits)
			payloads = append(payloads, v.Data)
		}
	}
	w.Flush()

	out := w.Bytes()
	for _, p := range payloads {
		out = append(out, p...)
	}
	if debug.Encode() {
		debug.Logf("encode: %d fields -> %d fixed + %d payload bytes\n",
			len(s.fields), s.maxByteLength, len(out)-s.maxByteLength)
	}
	return out, nil
}
