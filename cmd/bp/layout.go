package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/bitpack-format/bitpack/field"
)

func layoutCmd(cfg *LayoutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Layout.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: layout takes no arguments", cli.ErrUsage)
	}
	s, err := cfg.loadSchema()
	if err != nil {
		return err
	}

	name := fmt.Sprintf
	kind := fmt.Sprintf
	if cfg.colorEnabled(cc.Out) {
		name = color.CyanString
		kind = color.YellowString
	}

	if s.Name != "" {
		fmt.Fprintf(cc.Out, "schema %s\n", name("%s", s.Name))
	}
	offset := uint(0)
	for _, f := range s.Fields() {
		detail := ""
		switch f.Kind {
		case field.IntKind:
			if f.AlwaysPresent {
				detail = fmt.Sprintf("always %d", f.Min)
			} else {
				detail = fmt.Sprintf("[%d, %d]", f.Min, f.Max)
			}
		case field.BytesKind:
			detail = fmt.Sprintf("<= %d bytes, prefix only", f.Max)
		}
		fmt.Fprintf(cc.Out, "%-40s %-6s bit %3d + %2d  %s\n",
			name("%s", f.Name), kind("%s", f.Kind.String()),
			offset, f.Bits, detail)
		offset += f.Bits
	}
	fmt.Fprintf(cc.Out, "%d bits packed into %d fixed bytes\n", s.TotalBits(), s.MaxByteLength())
	return nil
}
