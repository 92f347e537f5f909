package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/dirbuild"

	"github.com/scott-cotton/cli"
)

func profiles(cfg *ProfilesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Profiles.Parse(cc, args)
	if err != nil {
		cfg.Profiles.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	dir := cfg.Dir
	switch len(args) {
	case 0:
	case 1:
		dir = args[0]
	default:
		return fmt.Errorf("%w: profiles takes at most one directory", cli.ErrUsage)
	}
	if dir == "" {
		dir = "."
	}
	d, err := dirbuild.OpenDir(dir)
	if err != nil {
		return err
	}
	names, err := d.Profiles()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cc.Out, name); err != nil {
			return err
		}
	}
	return nil
}
