package main

import (
	"fmt"
	"strings"
)

// docFormat selects the syntax of value documents on either side of
// the codec.
type docFormat int

const (
	yamlFormat docFormat = iota
	jsonFormat
)

func parseDocFormat(v string) (docFormat, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return jsonFormat, nil
	case "yaml", "y":
		return yamlFormat, nil
	}
	return 0, fmt.Errorf("unknown format %q", v)
}
