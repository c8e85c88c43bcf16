package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/history"
	"github.com/tedgoud/fffs/inode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		img, err := loadImage(arg)
		if err != nil {
			return err
		}
		dumpTree(cfg, cc.Out, img.Root, 0)
		for _, s := range img.Snapshots {
			fmt.Fprintf(cc.Out, "snapshot %d %s %s\n", s.ID(), s.Root().LocalName(), s.Root().FullPathName())
		}
		if i < len(args)-1 {
			io.WriteString(cc.Out, "---\n")
		}
	}
	return nil
}

func dumpTree(cfg *DumpConfig, w io.Writer, n inode.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	name := n.LocalName()
	if name == "" {
		name = inode.Separator
	}
	if !n.IsDirectory() {
		if cfg.Long {
			fmt.Fprintf(w, "%s- %04o %s\n", indent, n.Attrs().Perm, name)
		} else {
			fmt.Fprintf(w, "%s- %s\n", indent, name)
		}
		return
	}
	dir := n.AsDirectory()
	line := fmt.Sprintf("%sd %s", indent, name)
	if cfg.Long {
		line = fmt.Sprintf("%sd %04o %s:%s %s", indent, n.Attrs().Perm, n.Attrs().Owner, n.Attrs().Group, name)
		if dl, ok := dir.DiffHistory().(*history.DiffList); ok && dl.Len() > 0 {
			line += fmt.Sprintf(" @%v", dl.IDs())
		}
	}
	fmt.Fprintln(w, line)
	for _, c := range dir.CurrentChildrenList() {
		dumpTree(cfg, w, c, depth+1)
	}
}
