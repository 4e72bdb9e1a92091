// Package field defines the declarative field descriptors and the
// tagged runtime values a schema encodes and decodes.
package field

// Field describes one value slot in a message. Min and Max are the
// inclusive bounds of an int field; for a bytes field Max is the
// maximum payload length in bytes and Min is unused. Bits and
// AlwaysPresent are zero until resolved by schema construction.
type Field struct {
	Name string
	Kind Kind

	Min, Max int32

	// Resolved by schema.Construct.
	Bits          uint
	AlwaysPresent bool
}

// Int declares an int field holding values in [min, max].
func Int(name string, min, max int32) Field {
	return Field{Name: name, Kind: IntKind, Min: min, Max: max}
}

// Boolean declares a single-bit boolean field.
func Boolean(name string) Field {
	return Field{Name: name, Kind: BooleanKind}
}

// Bytes declares a variable-length field holding at most max bytes.
func Bytes(name string, max int32) Field {
	return Field{Name: name, Kind: BytesKind, Max: max}
}
