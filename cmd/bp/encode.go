package main

import (
	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	s, err := cfg.loadSchema()
	if err != nil {
		return err
	}
	doc, err := readInput(cc, args)
	if err != nil {
		return err
	}
	values, err := parseValues(s, doc, cfg.inJSON())
	if err != nil {
		return err
	}
	blob, err := s.Encode(values)
	if err != nil {
		return err
	}
	return cfg.writeBlob(cc.Out, blob)
}
