package encode_test

import (
	"strings"
	"testing"

	"github.com/signadot/tony-format/go-conf/encode"
	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/parse"
)

func robot() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("name"), Val: ir.FromString("kelo")},
		{Key: ir.FromString("wheels"), Val: ir.FromInt(4)},
		{Key: ir.FromString("id"), Val: ir.FromString("5")},
		{Key: ir.FromString("pose"), Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("x"), Val: ir.FromNumber("0.50")},
			{Key: ir.FromString("y"), Val: ir.FromFloat(-2.5)},
		})},
		{Key: ir.FromString("enabled"), Val: ir.FromBool(true)},
		{Key: ir.FromString("comment"), Val: ir.Null()},
		{Key: ir.FromString("wheels_at"), Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2),
		})},
	})
}

func TestEncodeYAML(t *testing.T) {
	out := encode.MustString(ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("b"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.FromString("x")},
	}))
	if out != "b: 1\na: x" {
		t.Errorf("got %q", out)
	}
}

func TestEncodeLiteralNumber(t *testing.T) {
	out := encode.MustString(robot())
	if !strings.Contains(out, "x: 0.50") {
		t.Errorf("number text not kept:\n%s", out)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    format.Format
	}{
		{"yaml", format.YAMLFormat},
		{"json", format.JSONFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := robot()
			out := encode.MustString(in, encode.EncodeFormat(tt.f))
			got, err := parse.Parse([]byte(out), parse.ParseFormat(tt.f))
			if err != nil {
				t.Fatalf("%v:\n%s", err, out)
			}
			if !ir.Equal(in, got) {
				t.Errorf("round trip differs:\n%s", out)
			}
		})
	}
}

func TestEncodeColors(t *testing.T) {
	out := encode.MustString(robot(), encode.EncodeColors(encode.NewColors()))
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("no escapes in %q", out)
	}
	plain := encode.MustString(robot(), encode.EncodeColors(encode.NewColors()), encode.EncodeFormat(format.JSONFormat))
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("json output colored: %q", plain)
	}
}
