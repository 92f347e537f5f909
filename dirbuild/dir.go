// Package dirbuild interprets a configuration directory.
//
// A configuration directory holds a base document named conf.yaml,
// conf.yml or conf.json, and optionally a profiles sub-directory of
// override documents:
//
//	robot/
//	  conf.yaml
//	  profiles/
//	    sim.yaml
//	    lab.json
//
// Loading the directory with profiles merges the base, then each profile
// in the order given, then the override held in $CONF_OVERRIDE if set.
package dirbuild

import (
	"fmt"
	"os"
	"path/filepath"

	conf "github.com/signadot/tony-format/go-conf"
	"github.com/signadot/tony-format/go-conf/debug"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/merge"
)

var baseNames = []string{"conf.yaml", "conf.yml", "conf.json"}

type Dir struct {
	Root string
	// Base is the path of the base document.
	Base string
}

func OpenDir(path string) (*Dir, error) {
	for _, name := range baseNames {
		candidatePath := filepath.Join(path, name)
		st, err := os.Stat(candidatePath)
		if err == nil {
			if st.IsDir() {
				return nil, fmt.Errorf("%q is a directory", candidatePath)
			}
			return &Dir{Root: path, Base: candidatePath}, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not stat %q: %w", candidatePath, err)
		}
	}
	return nil, fmt.Errorf("could not find conf.{yaml,yml,json} in %q: %w", path, os.ErrNotExist)
}

// LoadBase loads the base document alone.
func (d *Dir) LoadBase() (*ir.Node, error) {
	return loadPath(d.Base)
}

// Load merges the base document, the named profiles and the environment
// override, in that order.
func (d *Dir) Load(profiles ...string) (*ir.Node, error) {
	res, err := d.LoadBase()
	if err != nil {
		return nil, err
	}
	for _, profile := range profiles {
		p, err := d.profilePath(profile)
		if err != nil {
			return nil, err
		}
		yProfile, err := loadPath(p)
		if err != nil {
			return nil, err
		}
		if debug.Load() {
			debug.Logf("applying profile %s from %s\n", profile, p)
		}
		res = merge.Merge(res, yProfile)
	}
	yEnv, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	if yEnv != nil {
		res = merge.Merge(res, yEnv)
	}
	return res, nil
}

func loadPath(p string) (*ir.Node, error) {
	doc, err := conf.ReadDoc(p, nil)
	if err != nil {
		return nil, err
	}
	return conf.LoadDocs(doc)
}
