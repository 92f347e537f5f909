package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file suffix)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "conf").
		WithSynopsis("conf [opts] command [opts]").
		WithDescription("conf merges layered configuration files and reads typed values from them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confMain(cfg, cc, args)
		}).
		WithSubs(
			MergeCommand(cfg),
			GetCommand(cfg),
			KeysCommand(cfg),
			ProfilesCommand(cfg),
			TypesCommand(cfg))
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge [-changes] <base> [overrides]").
		WithDescription(mergeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mergeFiles(cfg, cc, args)
		})
}

const mergeDescription = `merge merges override files onto a base file and prints the result.

Maps are merged key by key, recursively. Any other override value replaces
the base value, except null which keeps it. Keys of the base come first,
followed by keys only present in the overrides.

With -changes, the changes the overrides made to the base are printed
instead, one per line:

  + $.path: value         added
  - $.path: value         removed
  ~ $.path: old -> new    replaced`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg, Type: "string"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-t type] [-q] <path> [files]").
		WithDescription("merge files and read the value at path as a type, see 'conf types'").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys <path> [files]").
		WithDescription("merge files and list the keys of the map at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func ProfilesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProfilesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Profiles, "profiles").
		WithSynopsis("profiles [dir]").
		WithDescription("list the profiles of a configuration directory, -C by default").
		WithRun(func(cc *cli.Context, args []string) error {
			return profiles(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithSynopsis("types").
		WithDescription("list the types get can read").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
