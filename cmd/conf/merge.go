package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/encode"
	"github.com/signadot/tony-format/go-conf/libdiff"

	"github.com/scott-cotton/cli"
)

func mergeFiles(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 && cfg.Dir == "" {
		return fmt.Errorf("%w: merge requires a base file or -C", cli.ErrUsage)
	}
	base, merged, err := loadFiles(cfg.MainConfig, cc, args)
	if err != nil {
		return err
	}
	if !cfg.Changes {
		return encode.Encode(merged, cc.Out, cfg.encOpts(cc.Out)...)
	}
	for _, c := range libdiff.Diff(base, merged) {
		if _, err := fmt.Fprintln(cc.Out, c); err != nil {
			return err
		}
	}
	return nil
}
