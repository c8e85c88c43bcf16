package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/image"
	"github.com/tedgoud/fffs/treebuild"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: build takes at most one tree document", cli.ErrUsage)
	}
	var data []byte
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cc.In)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return err
	}
	img, err := treebuild.Build(data)
	if err != nil {
		return err
	}
	var w io.Writer = cc.Out
	if cfg.Out != "" && cfg.Out != "-" {
		f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := image.Write(w, img); err != nil {
		return err
	}
	theLog.Info("wrote image", "out", cfg.Out, "snapshots", len(img.Snapshots))
	return nil
}
