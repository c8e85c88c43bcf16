package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/inode"
	"github.com/tedgoud/fffs/snapshot"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: find requires an image and a path", cli.ErrUsage)
	}
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}
	n := inode.Lookup(img.Root, args[1], snapshot.CurrentStateID)
	if n == nil {
		return fmt.Errorf("no node at %q", args[1])
	}
	id := snapshot.FindLatest(n, cfg.Anchor)
	if id == snapshot.NoSnapshotID {
		fmt.Fprintln(cc.Out, "no snapshot")
		return nil
	}
	for _, s := range img.Snapshots {
		if s.ID() == id {
			fmt.Fprintf(cc.Out, "%d\t%s\t%s\n", id, snapshot.NameOf(s), s.Root().FullPathName())
			return nil
		}
	}
	fmt.Fprintln(cc.Out, id)
	return nil
}
