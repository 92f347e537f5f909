package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/tony-format/go-conf/encode"
	"github.com/signadot/tony-format/go-conf/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Dir     string `cli:"name=C aliases=dir desc='configuration directory to load before any files'"`
	Profile string `cli:"name=p aliases=profile desc='comma separated profiles of the configuration directory'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the input format forced by flags, nil when each file's
// suffix decides.
func (cfg *MainConfig) inFormat() *format.Format {
	var f *format.Format
	switch {
	case cfg.Y:
		y := format.YAMLFormat
		f = &y
	case cfg.J:
		j := format.JSONFormat
		f = &j
	}
	if cfg.InFormat != nil {
		f = cfg.InFormat
	}
	return f
}

func (cfg *MainConfig) profiles() []string {
	if cfg.Profile == "" {
		return nil
	}
	return strings.Split(cfg.Profile, ",")
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	switch {
	case cfg.Y:
		fmt = format.YAMLFormat
	case cfg.J:
		fmt = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type MergeConfig struct {
	*MainConfig
	Changes bool `cli:"name=changes aliases=c desc='print the changes to the base instead of the result'"`

	Merge *cli.Command
}

type GetConfig struct {
	*MainConfig
	Type  string `cli:"name=t aliases=type desc='type to read the value as'"`
	Quiet bool   `cli:"name=q desc='do not log why a value could not be read'"`

	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type ProfilesConfig struct {
	*MainConfig

	Profiles *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
