package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/snapshot"
)

func fsnapMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
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

func snapPath(cmd *cli.Command, cc *cli.Context, args []string) error {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: path requires a directory path and a snapshot name", cli.ErrUsage)
	}
	fmt.Fprintln(cc.Out, snapshot.PathJoin(args[0], args[1]))
	return nil
}

func snapName(cmd *cli.Command, cc *cli.Context, args []string) error {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: name takes no arguments", cli.ErrUsage)
	}
	fmt.Fprintln(cc.Out, snapshot.GenerateDefaultName())
	return nil
}
