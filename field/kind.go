package field

import "fmt"

// Kind discriminates the three field and value variants.
type Kind int

const (
	IntKind Kind = iota
	BooleanKind
	BytesKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		IntKind:     "int",
		BooleanKind: "bool",
		BytesKind:   "bytes",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"int":     IntKind,
		"bool":    BooleanKind,
		"boolean": BooleanKind,
		"bytes":   BytesKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized field kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		IntKind,
		BooleanKind,
		BytesKind,
	}
}

// Fixed reports whether the kind occupies a fixed number of bits in the
// packed region. Bytes fields contribute only a length prefix there.
func (k Kind) Fixed() bool {
	return k != BytesKind
}
