package merge

import (
	"encoding/json"
	"testing"

	"github.com/signadot/tony-format/go-conf/encode"
	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/parse"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, doc string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func yamlString(n *ir.Node) string {
	return encode.MustString(n)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		override string
		want     string
	}{
		{
			name:     "override wins",
			base:     "{a: 5, b: 6}",
			override: "{b: 7, c: 8}",
			want:     "{a: 5, b: 7, c: 8}",
		},
		{
			name:     "null override",
			base:     "{a: 5, b: 6}",
			override: "",
			want:     "{a: 5, b: 6}",
		},
		{
			name:     "empty override",
			base:     "{a: 5, b: 6}",
			override: "{}",
			want:     "{a: 5, b: 6}",
		},
		{
			name:     "empty base",
			base:     "{}",
			override: "{b: 7, c: 8}",
			want:     "{b: 7, c: 8}",
		},
		{
			name:     "null base",
			base:     "",
			override: "{b: 7}",
			want:     "{b: 7}",
		},
		{
			name:     "scalar override",
			base:     "{a: 5}",
			override: "3",
			want:     "3",
		},
		{
			name:     "sequence replaced",
			base:     "{a: [1, 2, 3]}",
			override: "{a: [4]}",
			want:     "{a: [4]}",
		},
		{
			name:     "nested",
			base:     "{robot: {name: kelo, limits: {vel: 1, acc: 2}}, log: info}",
			override: "{robot: {limits: {acc: 3, jerk: 4}}}",
			want:     "{robot: {name: kelo, limits: {vel: 1, acc: 3, jerk: 4}}, log: info}",
		},
		{
			name:     "map replaces scalar",
			base:     "{a: 5, b: 1}",
			override: "{a: {x: 1}}",
			want:     "{a: {x: 1}, b: 1}",
		},
		{
			name:     "scalar replaces map",
			base:     "{a: {x: 1}, b: 1}",
			override: "{a: 5}",
			want:     "{a: 5, b: 1}",
		},
		{
			name:     "null value keeps base",
			base:     "{a: {x: 1}}",
			override: "{a: null}",
			want:     "{a: {x: 1}}",
		},
		{
			name:     "override order",
			base:     "{z: 1, a: 2}",
			override: "{m: 3, a: 4, b: 5}",
			want:     "{z: 1, a: 4, m: 3, b: 5}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, override := mustParse(t, tt.base), mustParse(t, tt.override)
			want := mustParse(t, tt.want)
			baseYAML, overrideYAML := yamlString(base), yamlString(override)

			got := Merge(base, override)
			if !ir.Equal(want, got) {
				t.Errorf("got\n%s\nwant\n%s", yamlString(got), yamlString(want))
			}
			if yamlString(base) != baseYAML {
				t.Errorf("base modified:\n%s", yamlString(base))
			}
			if yamlString(override) != overrideYAML {
				t.Errorf("override modified:\n%s", yamlString(override))
			}
			if got.Parent != nil {
				t.Error("result is attached to a parent")
			}
		})
	}
}

func TestMergeNil(t *testing.T) {
	if got := Merge(nil, nil); got == nil || got.Type != ir.NullType {
		t.Errorf("got %v", got)
	}
	base := mustParse(t, "{a: 1}")
	if got := Merge(base, nil); !ir.Equal(base, got) || got == base {
		t.Errorf("got %v", got)
	}
}

func TestMergeShares(t *testing.T) {
	base := mustParse(t, "{a: {x: 1}, b: [1, 2]}")
	override := mustParse(t, "{a: {y: 2}, c: {z: 3}}")
	got := Merge(base, override)

	got.Get("a").Values[0].Int64 = nil
	got.Get("a").Values[0].Number = "99"
	got.Get("b").Values[0].String = "changed"
	got.Get("b").Values[0].Type = ir.StringType
	got.Get("c").Values[0].Type = ir.NullType
	if want := mustParse(t, "{a: {x: 1}, b: [1, 2]}"); !ir.Equal(want, base) {
		t.Errorf("base changed through result:\n%s", yamlString(base))
	}
	if want := mustParse(t, "{a: {y: 2}, c: {z: 3}}"); !ir.Equal(want, override) {
		t.Errorf("override changed through result:\n%s", yamlString(override))
	}

	base.Get("a").Values[0].Type = ir.NullType
	if got.Get("a").Values[0].Type == ir.NullType {
		t.Error("result changed through base")
	}
}

func TestMergeKeys(t *testing.T) {
	base := mustParse(t, `
defaults: &d {x: 1}
a:
  <<: *d
  y: 2
`)
	override := mustParse(t, `
a:
  <<: {x: 5}
  y: 3
`)
	got := Merge(base, override).Get("a")
	if len(got.Fields) != 3 {
		t.Fatalf("got\n%s", yamlString(got))
	}
	if got.Fields[0].Type != ir.NullType || got.Fields[2].Type != ir.NullType {
		t.Errorf("merge keys not kept in place:\n%s", yamlString(got))
	}
	if !ir.Equal(got.Values[0], mustParse(t, "{x: 1}")) || !ir.Equal(got.Values[2], mustParse(t, "{x: 5}")) {
		t.Errorf("merge key values:\n%s", yamlString(got))
	}
	if y := got.Get("y"); y == nil || *y.Int64 != 3 {
		t.Errorf("y %v", y)
	}

	ints := Merge(mustParse(t, "{1: a, 2: b}"), mustParse(t, "{2: c}"))
	if want := mustParse(t, "{1: a, 2: c}"); !ir.Equal(want, ints) {
		t.Errorf("int keys:\n%s", yamlString(ints))
	}
}

func TestMergeAll(t *testing.T) {
	base := mustParse(t, "{a: 1, b: {c: 2}}")
	o1 := mustParse(t, "{b: {d: 3}}")
	o2 := mustParse(t, "{a: 4, b: {c: 5}}")
	got := MergeAll(base, o1, o2)
	if want := Merge(Merge(base, o1), o2); !ir.Equal(want, got) {
		t.Errorf("got\n%s\nwant\n%s", yamlString(got), yamlString(want))
	}
	if got := MergeAll(base); !ir.Equal(base, got) || got == base {
		t.Error("MergeAll without overrides should copy base")
	}
	if got := MergeAll(nil); got.Type != ir.NullType {
		t.Errorf("got %v", got)
	}
}

func TestMergePatchAgreement(t *testing.T) {
	tests := []struct {
		base, override string
	}{
		{`{"a": 5, "b": 6}`, `{"b": 7, "c": 8}`},
		{`{"a": {"b": {"c": 1, "d": [1, 2]}}, "e": "x"}`, `{"a": {"b": {"d": [3], "f": true}}}`},
		{`{"a": 1, "b": {"c": 2}}`, `{"a": {"x": 1}, "b": "s"}`},
		{`{"a": {}}`, `{"a": {"b": 1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.override, func(t *testing.T) {
			base, err := parse.Parse([]byte(tt.base), parse.ParseJSON())
			if err != nil {
				t.Fatal(err)
			}
			override, err := parse.Parse([]byte(tt.override), parse.ParseJSON())
			if err != nil {
				t.Fatal(err)
			}
			got := encode.MustString(Merge(base, override), encode.EncodeFormat(format.JSONFormat))

			want, err := jsonpatch.MergePatch([]byte(tt.base), []byte(tt.override))
			if err != nil {
				t.Fatal(err)
			}
			var gotV, wantV any
			if err := json.Unmarshal([]byte(got), &gotV); err != nil {
				t.Fatalf("%v: %s", err, got)
			}
			if err := json.Unmarshal(want, &wantV); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantV, gotV); diff != "" {
				t.Errorf("merge differs from merge patch (-want +got):\n%s", diff)
			}
		})
	}
}
