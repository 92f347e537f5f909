package conf

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/geom"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/parse"
	"github.com/signadot/tony-format/go-conf/typed"
)

const robotYAML = `
robot:
  name: kelo
  max_vel: 1.0
  footprint:
    - {x: -0.3, y: -0.2}
    - {x: 0.3, y: -0.2}
    - {x: 0.3, y: 0.2}
    - {x: -0.3, y: 0.2}
`

const siteJSON = `{"robot": {"max_vel": 0.5, "base_link": {"x": 0.1, "y": 0, "theta": 0}}}`

func TestLoad(t *testing.T) {
	cfg, err := Load([]byte(robotYAML), []byte(siteJSON))
	if err != nil {
		t.Fatal(err)
	}
	robot := cfg.Get("robot")
	if got := typed.Get(robot, "max_vel", 0.0); got != 0.5 {
		t.Errorf("max_vel %g", got)
	}
	if got := typed.Get(robot, "name", ""); got != "kelo" {
		t.Errorf("name %q", got)
	}
	var fp geom.Polygon2D
	if !typed.Read(robot, "footprint", &fp, nil) || len(fp.Vertices) != 4 {
		t.Errorf("footprint %v", fp)
	}
	var tf geom.TransformMatrix2D
	if !typed.Read(robot, "base_link", &tf, nil) || tf.X() != 0.1 {
		t.Errorf("base_link %v", tf)
	}
	keys, _ := robot.Keys()
	want := []string{"name", "max_vel", "footprint", "base_link"}
	if len(keys) != len(want) {
		t.Fatalf("keys %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys %v want %v", keys, want)
			break
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Kind() != ir.NullKind {
		t.Errorf("got %s", cfg.Kind())
	}
}

func TestLoadError(t *testing.T) {
	if _, err := Load([]byte(robotYAML), []byte("a: [1")); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v", err)
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "robot.yaml")
	site := filepath.Join(dir, "site.json")
	if err := os.WriteFile(base, []byte(robotYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(site, []byte(siteJSON), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFiles(base, site)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Load([]byte(robotYAML), []byte(siteJSON))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(want, cfg) {
		t.Error("LoadFiles differs from Load")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("robot: {}"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFiles(base, bad); !errors.Is(err, parse.ErrParse) {
		t.Errorf("yaml in a json file: %v", err)
	}
	if _, err := LoadFiles(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
}

func TestReadDoc(t *testing.T) {
	doc, err := ReadDoc("-", strings.NewReader(siteJSON))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name != "-" || doc.Format != format.YAMLFormat || string(doc.Data) != siteJSON {
		t.Errorf("got %+v", doc)
	}
	cfg, err := LoadDocs(Doc{Name: "site", Data: doc.Data, Format: format.JSONFormat})
	if err != nil {
		t.Fatal(err)
	}
	if v := typed.Get(cfg.Get("robot"), "max_vel", 0.0); v != 0.5 {
		t.Errorf("max_vel %g", v)
	}
}
