package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/tedgoud/fffs/snapshot"
)

func ls(cfg *LsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ls.Parse(cc, args)
	if err != nil {
		return err
	}
	var program *vm.Program
	if cfg.Filter != "" {
		program, err = expr.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: bad filter %q: %w", cli.ErrUsage, cfg.Filter, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		img, err := loadImage(arg)
		if err != nil {
			return err
		}
		for _, s := range img.Snapshots {
			dirPath := s.Root().Parent().FullPathName()
			if program != nil {
				keep, err := runFilter(program, s, dirPath)
				if err != nil {
					return err
				}
				if !keep {
					continue
				}
			}
			fmt.Fprintf(cc.Out, "%d\t%s\t%s\n", s.ID(), snapshot.NameOf(s), dirPath)
		}
	}
	return nil
}

func runFilter(program *vm.Program, s *snapshot.Snapshot, dirPath string) (bool, error) {
	out, err := vm.Run(program, map[string]any{
		"id":   s.ID(),
		"name": snapshot.NameOf(s),
		"path": dirPath,
	})
	if err != nil {
		return false, fmt.Errorf("error evaluating filter on %v: %w", s, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a bool on %v", s)
	}
	return keep, nil
}
