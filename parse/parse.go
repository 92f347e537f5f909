package parse

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/signadot/tony-format/go-conf/debug"
	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Parse decodes the first document of d. Empty input yields a Null node.
//
// Aliases are expanded into copies of their anchor. The copies made for
// one document are bounded by DefaultMaxAliasNodes nodes unless
// ParseMaxAliasNodes says otherwise; exceeding the bound is ErrAliasLimit.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat, maxAliasNodes: DefaultMaxAliasNodes}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsJSON() && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}
	file, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(file.Docs) == 0 || file.Docs[0] == nil {
		return ir.Null(), nil
	}
	p := &docParser{opts: pOpts, anchors: map[string]*ir.Node{}}
	res, err := p.node(file.Docs[0].Body)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s document:\n%v\n", pOpts.format, res)
	}
	return res, nil
}

type docParser struct {
	opts    *parseOpts
	anchors map[string]*ir.Node
	// expanded counts the nodes copied for aliases so far.
	expanded int
}

func (p *docParser) expand(a *ir.Node, x *ast.AliasNode) (*ir.Node, error) {
	p.expanded += size(a)
	if limit := p.opts.maxAliasNodes; limit > 0 && p.expanded > limit {
		return nil, fmt.Errorf("%w: more than %d at %s", ErrAliasLimit, limit, posOf(x))
	}
	return a.Clone(), nil
}

func size(n *ir.Node) int {
	res := 1
	for _, f := range n.Fields {
		res += size(f)
	}
	for _, v := range n.Values {
		res += size(v)
	}
	return res
}

func (p *docParser) track(node *ir.Node, n ast.Node) {
	if p.opts.positions == nil {
		return
	}
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return
	}
	p.opts.positions[node] = &Pos{Line: tok.Position.Line, Column: tok.Position.Column}
}

func posOf(n ast.Node) string {
	tok := n.GetToken()
	if tok == nil || tok.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
}

func (p *docParser) node(n ast.Node) (*ir.Node, error) {
	if n == nil {
		return ir.Null(), nil
	}
	var (
		res *ir.Node
		err error
	)
	switch x := n.(type) {
	case *ast.NullNode:
		res = ir.Null()
	case *ast.BoolNode:
		res = ir.FromBool(x.Value)
	case *ast.IntegerNode, *ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		res = ir.FromNumber(x.GetToken().Value)
	case *ast.StringNode:
		res = ir.FromString(x.Value)
	case *ast.LiteralNode:
		res = ir.FromString(x.Value.Value)
	case *ast.MappingNode:
		res, err = p.mapping(x.Values)
	case *ast.MappingValueNode:
		res, err = p.mapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		res, err = p.sequence(x)
	case *ast.AnchorNode:
		res, err = p.node(x.Value)
		if err != nil {
			return nil, err
		}
		p.anchors[x.Name.GetToken().Value] = res
		return res, nil
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		a, ok := p.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w %q at %s", ErrUnknownAlias, name, posOf(x))
		}
		res, err = p.expand(a, x)
	case *ast.TagNode:
		res, err = p.tagged(x)
	case *ast.MappingKeyNode:
		return p.node(x.Value)
	case *ast.MergeKeyNode:
		res = ir.FromString("<<")
	default:
		return nil, fmt.Errorf("%w: unsupported %s at %s", ErrParse, n.Type(), posOf(n))
	}
	if err != nil {
		return nil, err
	}
	p.track(res, n)
	return res, nil
}

func (p *docParser) sequence(x *ast.SequenceNode) (*ir.Node, error) {
	vals := make([]*ir.Node, len(x.Values))
	for i, v := range x.Values {
		val, err := p.node(v)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return ir.FromSlice(vals), nil
}

func (p *docParser) mapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(mvs))
	seen := make(map[string]bool, len(mvs))
	for _, mv := range mvs {
		key, err := p.key(mv.Key)
		if err != nil {
			return nil, err
		}
		if s, ok := key.KeyString(); ok {
			if seen[s] {
				return nil, fmt.Errorf("%w %q at %s", ErrDuplicateKey, s, posOf(mv.Key))
			}
			seen[s] = true
		}
		val, err := p.node(mv.Value)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}

// key converts a mapping key. Scalar keys other than integers are keyed by
// their text, "<<" becomes a merge key and anything else a complex key.
func (p *docParser) key(k ast.Node) (*ir.Node, error) {
	switch x := k.(type) {
	case *ast.MergeKeyNode:
		return ir.Null(), nil
	case *ast.MappingKeyNode:
		return p.key(x.Value)
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	}
	res, err := p.node(k)
	if err != nil {
		return nil, err
	}
	if res.Kind() == ir.NullKind {
		return ir.FromString(k.GetToken().Value), nil
	}
	if _, ok := res.KeyString(); !ok && res.Kind() == ir.ScalarKind {
		return ir.FromString(res.Text()), nil
	}
	return res, nil
}

func (p *docParser) tagged(x *ast.TagNode) (*ir.Node, error) {
	tag := x.Start.Value
	switch tag {
	case "!!str", "!!int", "!!float", "!!bool", "!!null":
	default:
		return p.node(x.Value)
	}
	var text string
	switch v := x.Value.(type) {
	case *ast.StringNode:
		text = v.Value
	case *ast.LiteralNode:
		text = v.Value.Value
	case nil:
	default:
		if v.GetToken() == nil {
			return nil, fmt.Errorf("%w: %s at %s", ErrBadTaggedNode, tag, posOf(x))
		}
		text = v.GetToken().Value
	}
	switch tag {
	case "!!str":
		return ir.FromString(text), nil
	case "!!null":
		return ir.Null(), nil
	case "!!bool":
		b, err := ir.FromString(text).AsBool()
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q at %s", ErrBadTaggedNode, tag, text, posOf(x))
		}
		return ir.FromBool(b), nil
	case "!!int":
		if _, err := strconv.ParseInt(text, 0, 64); err != nil {
			return nil, fmt.Errorf("%w: %s %q at %s", ErrBadTaggedNode, tag, text, posOf(x))
		}
	case "!!float":
		if _, err := ir.FromString(text).AsFloat64(); err != nil {
			return nil, fmt.Errorf("%w: %s %q at %s", ErrBadTaggedNode, tag, text, posOf(x))
		}
	}
	return ir.FromNumber(text), nil
}
