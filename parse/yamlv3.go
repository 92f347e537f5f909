package parse

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/ir"

	"gopkg.in/yaml.v3"
)

// FromYAMLNode converts a tree decoded by gopkg.in/yaml.v3. Aliases are
// expanded and merge keys are kept as Null typed keys, as in Parse.
func FromYAMLNode(n *yaml.Node) (*ir.Node, error) {
	if n == nil {
		return ir.Null(), nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ir.Null(), nil
		}
		return FromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	case yaml.SequenceNode:
		vals := make([]*ir.Node, len(n.Content))
		for i, c := range n.Content {
			v, err := FromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return ir.FromSlice(vals), nil
	case yaml.MappingNode:
		return fromYAMLMapping(n)
	}
	return nil, fmt.Errorf("%w: unsupported yaml.v3 node kind %d at %d:%d", ErrParse, n.Kind, n.Line, n.Column)
}

func fromYAMLScalar(n *yaml.Node) (*ir.Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return ir.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadTaggedNode, err)
		}
		return ir.FromBool(b), nil
	case "!!int", "!!float":
		return ir.FromNumber(n.Value), nil
	}
	return ir.FromString(n.Value), nil
}

func fromYAMLMapping(n *yaml.Node) (*ir.Node, error) {
	if len(n.Content)%2 != 0 {
		return nil, fmt.Errorf("%w: odd mapping content at %d:%d", ErrParse, n.Line, n.Column)
	}
	kvs := make([]ir.KeyVal, 0, len(n.Content)/2)
	seen := map[string]bool{}
	for i := 0; i < len(n.Content); i += 2 {
		kn, vn := n.Content[i], n.Content[i+1]
		var key *ir.Node
		switch {
		case kn.Kind == yaml.ScalarNode && kn.ShortTag() == "!!merge":
			key = ir.Null()
		case kn.Kind == yaml.ScalarNode && kn.ShortTag() == "!!int":
			key = ir.FromNumber(kn.Value)
		case kn.Kind == yaml.ScalarNode:
			key = ir.FromString(kn.Value)
		default:
			k, err := FromYAMLNode(kn)
			if err != nil {
				return nil, err
			}
			key = k
		}
		if s, ok := key.KeyString(); ok {
			if seen[s] {
				return nil, fmt.Errorf("%w %q at %d:%d", ErrDuplicateKey, s, kn.Line, kn.Column)
			}
			seen[s] = true
		}
		val, err := FromYAMLNode(vn)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	return ir.FromKeyVals(kvs), nil
}
