package main

import (
	"fmt"
	"strings"

	"github.com/signadot/tony-format/go-conf/typed"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	read, ok := typed.Lookup(cfg.Type)
	if !ok {
		return fmt.Errorf("%w: unknown type %q, expected one of %s", cli.ErrUsage, cfg.Type, strings.Join(typed.Names(), ", "))
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	_, merged, err := loadFiles(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	node, err := merged.GetPath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var r typed.Reporter
	if !cfg.Quiet {
		r = typed.LogReporter(theLog)
	}
	if node == nil {
		if r != nil {
			theLog.Warn("path not found", "path", path)
		}
		return cli.ExitCodeErr(1)
	}
	v, ok := read(node, r)
	if !ok {
		return cli.ExitCodeErr(1)
	}
	_, err = fmt.Fprintln(cc.Out, v)
	return err
}
