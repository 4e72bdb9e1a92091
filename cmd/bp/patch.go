package main

import (
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

// patchCmd decodes a blob, applies an RFC 6902 patch to its value
// document, and re-encodes the result against the same schema.
func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and an optional blob file", cli.ErrUsage)
	}
	s, err := cfg.loadSchema()
	if err != nil {
		return err
	}
	patchDoc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	ops, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return fmt.Errorf("bad patch document: %w", err)
	}
	blob, err := cfg.readBlob(cc, args[1:])
	if err != nil {
		return err
	}
	values, err := s.Decode(blob)
	if err != nil {
		return err
	}
	doc, err := renderValuesJSON(values)
	if err != nil {
		return err
	}
	patched, err := ops.Apply(doc)
	if err != nil {
		return fmt.Errorf("could not apply patch: %w", err)
	}
	newValues, err := parseValues(s, patched, true)
	if err != nil {
		return err
	}
	out, err := s.Encode(newValues)
	if err != nil {
		return err
	}
	return cfg.writeBlob(cc.Out, out)
}
