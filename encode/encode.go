package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	indent int
	format format.Format
	colors *Colors
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	v := toValue(node, es)
	var yOpts []yaml.EncodeOption
	if es.format.IsJSON() {
		yOpts = append(yOpts, yaml.JSON())
	} else {
		yOpts = append(yOpts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", node.Path(), err)
	}
	if es.colors != nil && !es.format.IsJSON() {
		d = []byte(es.colors.Colorize(string(d)))
	}
	if !bytes.HasSuffix(d, []byte{'\n'}) {
		d = append(d, '\n')
	}
	_, err = w.Write(d)
	return err
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// literal writes a parsed number back as it was spelled.
type literal string

func (l literal) MarshalYAML() ([]byte, error) {
	return []byte(l), nil
}

func toValue(node *ir.Node, es *EncState) any {
	switch node.Kind() {
	case ir.NullKind:
		return nil
	case ir.SequenceKind:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			res[i] = toValue(v, es)
		}
		return res
	case ir.MapKind:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			res[i] = yaml.MapItem{Key: keyValue(f, es), Value: toValue(node.Values[i], es)}
		}
		return res
	}
	switch node.Type {
	case ir.BoolType:
		return node.Bool
	case ir.StringType:
		return node.String
	}
	if node.Number != "" && !es.format.IsJSON() {
		return literal(node.Number)
	}
	switch {
	case node.Int64 != nil:
		return *node.Int64
	case node.Float64 != nil:
		return *node.Float64
	}
	return node.Number
}

func keyValue(f *ir.Node, es *EncState) any {
	if s, ok := f.KeyString(); ok {
		return s
	}
	if f.Type == ir.NullType {
		return "<<"
	}
	return toValue(f, es)
}
