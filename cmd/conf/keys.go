package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/typed"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires one argument, an object path", cli.ErrUsage)
	}
	_, merged, err := loadFiles(cfg.MainConfig, cc, args[1:])
	if err != nil {
		return err
	}
	node, err := merged.GetPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	ks, ok := node.Keys()
	if !ok {
		theLog.Warn(typed.ErrNotAMap.Error(), "path", args[0], "kind", node.Kind().String())
		return cli.ExitCodeErr(1)
	}
	for _, k := range ks {
		if _, err := fmt.Fprintln(cc.Out, k); err != nil {
			return err
		}
	}
	return nil
}

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		cfg.Types.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: types takes no arguments", cli.ErrUsage)
	}
	for _, name := range typed.Names() {
		if _, err := fmt.Fprintln(cc.Out, name); err != nil {
			return err
		}
	}
	return nil
}
