package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "s",
			Aliases:     []string{"schema"},
			Description: "schema document (yaml or toml) or registered schema name",
			Type:        cli.NamedFuncOpt(cfg.schemaOpt, "(filepath|name)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input value-document format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output value-document format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "bp").
		WithSynopsis("bp -s <schemafile> [opts] command [opts]").
		WithDescription("bp packs and unpacks schema-driven binary blobs.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return bpMain(cfg, cc, args)
		}).
		WithSubs(
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			LayoutCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func bpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("encode").
		WithAliases("enc", "e").
		WithSynopsis("encode [valuefile]").
		WithDescription("encode a value document into a packed blob").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("decode").
		WithAliases("dec", "d").
		WithSynopsis("decode [blobfile]").
		WithDescription("decode a packed blob into a value document").
		WithRun(func(cc *cli.Context, args []string) error {
			return decodeCmd(cfg, cc, args)
		})
	cfg.Decode = cmd
	return cmd
}

func LayoutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LayoutConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("layout").
		WithAliases("l").
		WithSynopsis("layout").
		WithDescription("show the resolved bit layout of the schema").
		WithRun(func(cc *cli.Context, args []string) error {
			return layoutCmd(cfg, cc, args)
		})
	cfg.Layout = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff <blobfile> <blobfile>").
		WithDescription("diff the decoded values of two packed blobs").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch <patchfile> [blobfile]").
		WithDescription("apply a json patch to a packed blob and re-encode it").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
