// Package schema resolves field declarations into a packed wire layout
// and encodes and decodes value mappings against it.
//
// A schema is built once with Construct and is immutable afterwards; it
// may be shared across concurrent Encode and Decode calls without
// synchronization.
package schema

import (
	"math/bits"

	"github.com/bitpack-format/bitpack/bitio"
	"github.com/bitpack-format/bitpack/debug"
	"github.com/bitpack-format/bitpack/field"
)

// Schema is an ordered set of resolved fields. Fixed-width fields come
// first in declaration order, then bytes fields in declaration order;
// the packed region occupies exactly MaxByteLength bytes and bytes
// payloads follow it.
type Schema struct {
	// Name is empty unless the schema came from a named schema
	// document; the registry requires it.
	Name string

	fields        []field.Field
	totalBits     uint
	maxByteLength int
}

// Construct resolves the bit width of each declared field and orders
// bytes fields after fixed-width fields, keeping declaration order
// within each group.
func Construct(specs []field.Field) (*Schema, error) {
	var (
		fixed  []field.Field
		varlen []field.Field
		total  uint
		seen   = map[string]bool{}
	)
	for _, f := range specs {
		if f.Name == "" {
			return nil, &SchemaError{Field: f.Name, Reason: "empty field name"}
		}
		if seen[f.Name] {
			return nil, &SchemaError{Field: f.Name, Reason: "duplicate field name"}
		}
		seen[f.Name] = true

		switch f.Kind {
		case field.IntKind:
			if f.Min > f.Max {
				return nil, &SchemaError{Field: f.Name, Reason: "min exceeds max"}
			}
			f.Bits = uint(bits.Len64(uint64(int64(f.Max) - int64(f.Min))))
			f.AlwaysPresent = f.Bits == 0
		case field.BooleanKind:
			f.Bits = 1
		case field.BytesKind:
			if f.Max < 0 {
				return nil, &SchemaError{Field: f.Name, Reason: "negative max length"}
			}
			f.Bits = uint(bits.Len64(uint64(f.Max)))
		default:
			return nil, &SchemaError{Field: f.Name, Reason: "unknown field kind"}
		}
		if f.Bits > bitio.MaxFieldBits {
			return nil, &SchemaError{Field: f.Name, Reason: "field too wide for accumulator"}
		}
		total += f.Bits
		if debug.Resolve() {
			debug.Logf("resolve: %s %s -> %d bits\n", f.Kind, f.Name, f.Bits)
		}
		if f.Kind.Fixed() {
			fixed = append(fixed, f)
		} else {
			varlen = append(varlen, f)
		}
	}
	return &Schema{
		fields:        append(fixed, varlen...),
		totalBits:     total,
		maxByteLength: int(total+7) / 8,
	}, nil
}

// MustConstruct is Construct for statically known declarations; it
// panics on error.
func MustConstruct(specs []field.Field) *Schema {
	s, err := Construct(specs)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the resolved fields in wire order. Callers must not
// modify the returned slice.
func (s *Schema) Fields() []field.Field {
	return s.fields
}

// MaxByteLength is the exact size in bytes of the packed fixed-width
// region. It does not bound bytes payloads, which follow it.
func (s *Schema) MaxByteLength() int {
	return s.maxByteLength
}

// TotalBits is the sum of all resolved field widths, counting a bytes
// field as its length prefix only.
func (s *Schema) TotalBits() uint {
	return s.totalBits
}
