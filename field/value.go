package field

import "fmt"

// Value is a tagged runtime payload. Exactly one of Int, Bool and Data
// is meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Int  int32
	Bool bool
	Data []byte
}

// IntValue wraps an integer.
func IntValue(v int32) Value {
	return Value{Kind: IntKind, Int: v}
}

// BooleanValue wraps a boolean.
func BooleanValue(v bool) Value {
	return Value{Kind: BooleanKind, Bool: v}
}

// BytesValue wraps a byte buffer. The Value aliases d; it does not copy.
func BytesValue(d []byte) Value {
	return Value{Kind: BytesKind, Data: d}
}

func (v Value) String() string {
	switch v.Kind {
	case IntKind:
		return fmt.Sprintf("%d", v.Int)
	case BooleanKind:
		return fmt.Sprintf("%t", v.Bool)
	case BytesKind:
		return fmt.Sprintf("0x%x", v.Data)
	}
	return "<unknown value>"
}
