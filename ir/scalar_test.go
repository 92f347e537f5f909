package ir

import (
	"errors"
	"math"
	"testing"
)

func TestAsInt(t *testing.T) {
	tests := []struct {
		node *Node
		want int
		err  error
	}{
		{FromInt(5), 5, nil},
		{FromNumber("5"), 5, nil},
		{FromNumber("0x10"), 16, nil},
		{FromString("-7"), -7, nil},
		{FromNumber("5.5"), 0, ErrConvert},
		{FromNumber("1_000"), 0, ErrConvert},
		{FromString("1_000"), 0, ErrConvert},
		{FromString("abc"), 0, ErrConvert},
		{FromBool(true), 0, ErrConvert},
		{Null(), 0, ErrNotScalar},
		{FromSlice(nil), 0, ErrNotScalar},
		{nil, 0, ErrNotScalar},
	}
	for _, tt := range tests {
		t.Run(tt.node.Text(), func(t *testing.T) {
			got, err := tt.node.AsInt()
			if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
				t.Fatalf("err %v want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("got %d want %d", got, tt.want)
			}
		})
	}
}

func TestAsUint(t *testing.T) {
	if u, err := FromNumber("5").AsUint(); err != nil || u != 5 {
		t.Errorf("got %d %v", u, err)
	}
	if _, err := FromNumber("-1").AsUint(); !errors.Is(err, ErrConvert) {
		t.Errorf("negative uint: %v", err)
	}
	if _, err := FromString("abc").AsUint(); !errors.Is(err, ErrConvert) {
		t.Errorf("string uint: %v", err)
	}
	if _, err := FromNumber("1_000").AsUint(); !errors.Is(err, ErrConvert) {
		t.Errorf("separated uint: %v", err)
	}
}

func TestDigitSeparators(t *testing.T) {
	n := FromNumber("1_000")
	if n.Int64 != nil || n.Float64 != nil {
		t.Errorf("1_000 parsed as int64 %v float64 %v", n.Int64, n.Float64)
	}
	if _, err := n.AsFloat64(); !errors.Is(err, ErrConvert) {
		t.Errorf("separated float: %v", err)
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		node *Node
		want float64
		ok   bool
	}{
		{FromNumber("5.5"), 5.5, true},
		{FromNumber("5"), 5, true},
		{FromInt(3), 3, true},
		{FromFloat(0.25), 0.25, true},
		{FromString("1e3"), 1000, true},
		{FromString(".inf"), math.Inf(1), true},
		{FromString("-.inf"), math.Inf(-1), true},
		{FromString("inf"), 0, false},
		{FromString("abc"), 0, false},
		{FromBool(false), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.node.Text(), func(t *testing.T) {
			got, err := tt.node.AsFloat64()
			if (err == nil) != tt.ok {
				t.Fatalf("err %v", err)
			}
			if tt.ok && got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
	if f, err := FromString(".nan").AsFloat64(); err != nil || !math.IsNaN(f) {
		t.Errorf("nan: %v %v", f, err)
	}
	if f, err := FromNumber("5.5").AsFloat32(); err != nil || f != 5.5 {
		t.Errorf("float32: %v %v", f, err)
	}
	if _, err := FromNumber("1e300").AsFloat32(); !errors.Is(err, ErrConvert) {
		t.Errorf("float32 range: %v", err)
	}
}

func TestAsBool(t *testing.T) {
	for _, s := range []string{"true", "True", "TRUE", "yes", "on", "y"} {
		if b, err := FromString(s).AsBool(); err != nil || !b {
			t.Errorf("%s: %v %v", s, b, err)
		}
	}
	for _, s := range []string{"false", "No", "OFF", "n"} {
		if b, err := FromString(s).AsBool(); err != nil || b {
			t.Errorf("%s: %v %v", s, b, err)
		}
	}
	if b, err := FromBool(true).AsBool(); err != nil || !b {
		t.Errorf("bool node: %v %v", b, err)
	}
	for _, n := range []*Node{FromString("abc"), FromInt(1), FromString("tRuE")} {
		if _, err := n.AsBool(); !errors.Is(err, ErrConvert) {
			t.Errorf("%s: %v", n.Text(), err)
		}
	}
}

func TestAsString(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{FromString("abc"), "abc"},
		{FromNumber("5.0"), "5.0"},
		{FromInt(5), "5"},
		{FromFloat(5.5), "5.5"},
		{FromBool(true), "true"},
	}
	for _, tt := range tests {
		got, err := tt.node.AsString()
		if err != nil || got != tt.want {
			t.Errorf("got %q %v want %q", got, err, tt.want)
		}
	}
	if _, err := FromKeyVals(nil).AsString(); !errors.Is(err, ErrNotScalar) {
		t.Errorf("map as string: %v", err)
	}
}
