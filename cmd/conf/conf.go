package main

import (
	"errors"
	"fmt"
	"os"

	conf "github.com/signadot/tony-format/go-conf"
	"github.com/signadot/tony-format/go-conf/dirbuild"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/merge"

	"github.com/scott-cotton/cli"
)

func confMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// loadFiles loads the configuration directory, if any, then the files in
// order, and merges them. With neither, standard input is read. base is
// the first layer before any override.
func loadFiles(cfg *MainConfig, cc *cli.Context, files []string) (base, merged *ir.Node, err error) {
	var layers []*ir.Node
	if cfg.Dir != "" {
		d, err := dirbuild.OpenDir(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		if base, err = d.LoadBase(); err != nil {
			return nil, nil, err
		}
		node, err := d.Load(cfg.profiles()...)
		if err != nil {
			return nil, nil, err
		}
		layers = append(layers, node)
	} else if cfg.Profile != "" {
		return nil, nil, fmt.Errorf("%w: -p requires -C", cli.ErrUsage)
	} else if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := conf.ReadDoc(file, cc.In)
		if err != nil {
			return nil, nil, err
		}
		if f := cfg.inFormat(); f != nil {
			doc.Format = *f
		}
		node, err := conf.LoadDocs(doc)
		if err != nil {
			return nil, nil, err
		}
		layers = append(layers, node)
	}
	if base == nil {
		base = layers[0]
	}
	return base, merge.MergeAll(layers[0], layers[1:]...), nil
}
