package typed

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/signadot/tony-format/go-conf/geom"
)

func TestLogReporter(t *testing.T) {
	node := mustParse(t, scalarDoc)
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, nil))
	var v float64
	if Read(node, "speed", &v, LogReporter(log)) {
		t.Fatal("read speed")
	}
	out := buf.String()
	for _, want := range []string{"level=WARN", "kind=KeyMissing", "key=speed", "type=float64"} {
		if !strings.Contains(out, want) {
			t.Errorf("%q does not contain %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one record, got %q", out)
	}
}

func TestLogReporterShared(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := LogReporter(nil)
	var wg sync.WaitGroup
	for range 8 {
		node := mustParse(t, "a: x")
		wg.Add(1)
		go func() {
			defer wg.Done()
			var v int
			if Read(node, "a", &v, r) {
				t.Error("read a as int")
			}
		}()
	}
	wg.Wait()
}

func TestCollector(t *testing.T) {
	node := mustParse(t, geomDoc)
	c := &Collector{}
	var p geom.Point2D
	Read(node, "partial", &p, c)
	Read(node, "origin", &p, c)
	Read(node, "missing", &p, c)
	if len(c.Errs) != 2 {
		t.Fatalf("got %d errors", len(c.Errs))
	}
	err := c.Err()
	if !errors.Is(err, ErrShapeMismatch) || !errors.Is(err, ErrKeyMissing) {
		t.Errorf("joined error %v", err)
	}
	c.Reset()
	if c.Err() != nil {
		t.Errorf("reset left %v", c.Err())
	}
}

func TestReporterFunc(t *testing.T) {
	var got []error
	r := ReporterFunc(func(err error) { got = append(got, err) })
	var v bool
	if !Read(mustParse(t, scalarDoc), "enabled", &v, r) || len(got) != 0 {
		t.Errorf("successful read reported %v", got)
	}
}

func TestRegistry(t *testing.T) {
	names := Names()
	if len(names) != 16 || !slices.IsSorted(names) {
		t.Errorf("names %v", names)
	}
	node := mustParse(t, geomDoc)
	tests := []struct {
		name string
		key  string
		want any
	}{
		{"point2d", "origin", geom.Point2D{X: 1, Y: 2}},
		{"Point3D", "camera", geom.Point3D{X: 1, Y: 2, Z: 3}},
		{"box", "box", geom.Box{MinX: -1, MaxX: 1, MinY: -2, MaxY: 2, MinZ: 0, MaxZ: 0.5}},
		{"string", "partial", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("no reader %s", tt.name)
			}
			got, ok := read(node.Get(tt.key), nil)
			if ok != (tt.want != nil) {
				t.Fatalf("read ok=%t", ok)
			}
			if got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
	if _, ok := Lookup("quaternion"); ok {
		t.Error("quaternion should not be registered")
	}
}
