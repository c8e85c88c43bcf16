package main

import (
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/snapshot"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	return cli.NewCommandAt(&cfg.Main, "fsnap").
		WithSynopsis("fsnap command [opts]").
		WithDescription("fsnap builds and inspects namespace images and their snapshots.").
		WithRun(func(cc *cli.Context, args []string) error {
			return fsnapMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			DumpCommand(cfg),
			LsCommand(cfg),
			FindCommand(cfg),
			DiffCommand(cfg),
			PathCommand(cfg),
			NameCommand(cfg))
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build -o <image> [tree.yaml]").
		WithDescription("build a namespace image from a YAML tree document").
		WithOpts(&cli.Opt{
			Name:        "o",
			Description: "output image file (default stdout)",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Out = a
				return nil, nil
			}, "(filepath)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [-l] [images]").
		WithDescription("print the tree and snapshot table of images").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func LsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Ls, "ls").
		WithSynopsis("ls [-f expr] [images]").
		WithDescription("list snapshots, optionally filtered by an expression over id, name and path").
		WithOpts(&cli.Opt{
			Name:        "f",
			Aliases:     []string{"filter"},
			Description: "filter expression, e.g. 'id >= 5 && path startsWith \"/d1\"'",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Filter = a
				return nil, nil
			}, "(expr)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return ls(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg, Anchor: snapshot.CurrentStateID}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find [-a anchor] <image> <path>").
		WithDescription("find the latest snapshot covering a path at or before an anchor id").
		WithOpts(&cli.Opt{
			Name:        "a",
			Aliases:     []string{"anchor"},
			Description: "anchor snapshot id (default: live state)",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				id, err := strconv.ParseInt(a, 10, 64)
				if err != nil {
					return nil, err
				}
				cfg.Anchor = id
				return nil, nil
			}, "(id)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Path: "/"}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff [-p path] <imageA> <imageB>").
		WithDescription("diff a directory's listing between two images").
		WithOpts(&cli.Opt{
			Name:        "p",
			Aliases:     []string{"path"},
			Description: "directory path to diff (default /)",
			Type: cli.NamedFuncOpt(func(_ *cli.Context, a string) (any, error) {
				cfg.Path = a
				return nil, nil
			}, "(path)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cmd := cli.NewCommand("path").
		WithSynopsis("path <dirpath> <name>").
		WithDescription("print the snapshot path for a directory and snapshot name")
	return cmd.WithRun(func(cc *cli.Context, args []string) error {
		return snapPath(cmd, cc, args)
	})
}

func NameCommand(mainCfg *MainConfig) *cli.Command {
	cmd := cli.NewCommand("name").
		WithSynopsis("name").
		WithDescription("print a default snapshot name for the current time")
	return cmd.WithRun(func(cc *cli.Context, args []string) error {
		return snapName(cmd, cc, args)
	})
}
