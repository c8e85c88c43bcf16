package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/inode"
	"github.com/tedgoud/fffs/snapdiff"
	"github.com/tedgoud/fffs/snapshot"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two images", cli.ErrUsage)
	}
	from, err := listing(args[0], cfg.Path)
	if err != nil {
		return err
	}
	to, err := listing(args[1], cfg.Path)
	if err != nil {
		return err
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	report := snapdiff.Compute(from, to)
	for _, name := range report.Deleted {
		fmt.Fprintln(cc.Out, color.RedString("- %s", name))
	}
	for _, name := range report.Created {
		fmt.Fprintln(cc.Out, color.GreenString("+ %s", name))
	}
	if report.Empty() {
		theLog.Info("no differences", "path", cfg.Path)
	}
	return nil
}

// listing returns the sorted child names of path's directory in an image.
func listing(arg, path string) ([]string, error) {
	img, err := loadImage(arg)
	if err != nil {
		return nil, err
	}
	n := inode.Lookup(img.Root, path, snapshot.CurrentStateID)
	if n == nil || !n.IsDirectory() {
		return nil, fmt.Errorf("no directory at %q in %s", path, arg)
	}
	names := []string{}
	for _, c := range n.AsDirectory().CurrentChildrenList() {
		names = append(names, c.LocalName())
	}
	return names, nil
}
