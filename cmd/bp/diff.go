package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two blob files", cli.ErrUsage)
	}
	s, err := cfg.loadSchema()
	if err != nil {
		return err
	}
	docs := make([]string, 2)
	for i, path := range args {
		blob, err := cfg.readBlobFile(path)
		if err != nil {
			return err
		}
		values, err := s.Decode(blob)
		if err != nil {
			return fmt.Errorf("could not decode %q: %w", path, err)
		}
		doc, err := renderValues(values, false)
		if err != nil {
			return err
		}
		docs[i] = string(doc)
	}

	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(docs[0], docs[1], true)
	if cfg.colorEnabled(cc.Out) {
		_, err = fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			_, err = fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
		case diffpatch.DiffInsert:
			_, err = fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
		default:
			_, err = fmt.Fprint(cc.Out, d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
