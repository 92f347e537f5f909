// Package gomap stores configuration trees into Go values.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/parse"
)

// IRFromer is implemented by values that decode themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// Load parses d and decodes the result into p.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return Decode(node, p)
}

// Decode stores node in the value pointed to by p the way encoding/json
// stores the equivalent JSON document. Merge keys and complex keys are
// skipped, integer keys become strings.
func Decode(node *ir.Node, p any) error {
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	b := bytes.NewBuffer(nil)
	if err := nodeToJSON(node, b); err != nil {
		return err
	}
	if err := json.Unmarshal(b.Bytes(), p); err != nil {
		return fmt.Errorf("could not decode %s: %w", node.Path(), err)
	}
	return nil
}

func nodeToJSON(node *ir.Node, b *bytes.Buffer) error {
	switch node.Kind() {
	case ir.NullKind:
		b.WriteString("null")
		return nil
	case ir.MapKind:
		b.WriteByte('{')
		n := 0
		for i, field := range node.Fields {
			key, ok := field.KeyString()
			if !ok {
				continue
			}
			if n > 0 {
				b.WriteByte(',')
			}
			n++
			writeString(key, b)
			b.WriteByte(':')
			if err := nodeToJSON(node.Values[i], b); err != nil {
				return err
			}
		}
		b.WriteByte('}')
		return nil
	case ir.SequenceKind:
		b.WriteByte('[')
		for i, val := range node.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := nodeToJSON(val, b); err != nil {
				return err
			}
		}
		b.WriteByte(']')
		return nil
	}
	switch node.Type {
	case ir.StringType:
		writeString(node.String, b)
	case ir.BoolType:
		b.WriteString(strconv.FormatBool(node.Bool))
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			b.WriteString(strconv.FormatInt(*node.Int64, 10))
		case node.Float64 != nil:
			f := *node.Float64
			if math.IsInf(f, 0) || math.IsNaN(f) {
				return fmt.Errorf("%w: %s at %s has no JSON form", ir.ErrConvert, node.Text(), node.Path())
			}
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		default:
			return fmt.Errorf("%w: number %q at %s", ir.ErrConvert, node.Number, node.Path())
		}
	}
	return nil
}

func writeString(s string, b *bytes.Buffer) {
	d, _ := json.Marshal(s)
	b.Write(d)
}
