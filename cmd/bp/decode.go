package main

import (
	"github.com/scott-cotton/cli"
)

func decodeCmd(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		return err
	}
	s, err := cfg.loadSchema()
	if err != nil {
		return err
	}
	blob, err := cfg.readBlob(cc, args)
	if err != nil {
		return err
	}
	values, err := s.Decode(blob)
	if err != nil {
		return err
	}
	doc, err := renderValues(values, cfg.asJSON())
	if err != nil {
		return err
	}
	return writeDoc(cc.Out, doc)
}
