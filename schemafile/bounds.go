package schemafile

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
)

// constEnv resolves the consts block into an expression environment.
// String consts are themselves expressions; they may reference the
// numeric consts but not each other.
func constEnv(consts map[string]any) (map[string]any, error) {
	env := make(map[string]any, len(consts))
	for name, v := range consts {
		if _, ok := v.(string); !ok {
			env[name] = v
		}
	}
	for name, v := range consts {
		s, ok := v.(string)
		if !ok {
			continue
		}
		res, err := expr.Eval(s, env)
		if err != nil {
			return nil, fmt.Errorf("%w: const %q: %w", ErrDoc, name, err)
		}
		env[name] = res
	}
	return env, nil
}

// bound coerces a document bound to an int32. Numbers pass through;
// strings are evaluated as expressions over env.
func bound(v any, env map[string]any) (int32, error) {
	if v == nil {
		return 0, fmt.Errorf("bound required")
	}
	if s, ok := v.(string); ok {
		res, err := expr.Eval(s, env)
		if err != nil {
			return 0, err
		}
		if _, again := res.(string); again {
			return 0, fmt.Errorf("expression %q yields a string", s)
		}
		return bound(res, env)
	}
	switch n := v.(type) {
	case int:
		return clamp32(int64(n))
	case int64:
		return clamp32(n)
	case uint64:
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("bound %d overflows int32", n)
		}
		return int32(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("bound %v is not an integer", n)
		}
		return clamp32(int64(n))
	}
	return 0, fmt.Errorf("bound has unsupported type %T", v)
}

func clamp32(n int64) (int32, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("bound %d overflows int32", n)
	}
	return int32(n), nil
}
