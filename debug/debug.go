package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Encode  bool
	Decode  bool
	Resolve bool
	Load    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("BITPACK_DEBUG_ENCODE")
	d.Decode = boolEnv("BITPACK_DEBUG_DECODE")
	d.Resolve = boolEnv("BITPACK_DEBUG_RESOLVE")
	d.Load = boolEnv("BITPACK_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Resolve() bool {
	return d.Resolve
}
func Load() bool {
	return d.Load
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
