package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/image"
)

type MainConfig struct {
	Main *cli.Command
}

type BuildConfig struct {
	*MainConfig
	Out   string
	Build *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Long bool `cli:"name=l desc='show permissions, owners and change-log ids'"`
	Dump *cli.Command
}

type LsConfig struct {
	*MainConfig
	Filter string
	Ls     *cli.Command
}

type FindConfig struct {
	*MainConfig
	Anchor int64
	Find   *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Path string
	Diff *cli.Command
}

// loadImage reads an image from a file, or from stdin for "-".
func loadImage(arg string) (*image.Image, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	img, err := image.Load(r)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", arg, err)
	}
	return img, nil
}
