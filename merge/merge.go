// Package merge combines configuration trees, override wins.
package merge

import (
	"github.com/signadot/tony-format/go-conf/debug"
	"github.com/signadot/tony-format/go-conf/ir"
)

// Merge returns a new tree combining base and override.
//
// A non-map override replaces base, except that a null override keeps base.
// An override map replaces a base that is not a map or is empty. Otherwise
// the maps are merged key by key: keys of base come first in base order,
// values present in both are merged recursively, and keys only in override
// follow in override order.
//
// Only string and integer keys are matched. Merge keys and complex keys of
// base are kept as they are, those of override are always appended.
//
// The result shares nothing with base or override, neither of which is
// modified. A nil node is treated as null.
func Merge(base, override *ir.Node) *ir.Node {
	res := merge(base, override)
	if res == nil {
		return ir.Null()
	}
	return res
}

// MergeAll merges each override onto the result of the previous merges,
// starting from base.
func MergeAll(base *ir.Node, overrides ...*ir.Node) *ir.Node {
	res := base.Clone()
	for _, o := range overrides {
		res = Merge(res, o)
	}
	if res == nil {
		return ir.Null()
	}
	return res
}

func merge(base, override *ir.Node) *ir.Node {
	if override.Kind() != ir.MapKind {
		if override.Kind() == ir.NullKind {
			if debug.Merge() {
				debug.Logf("merge %s: null override keeps base\n", base.Path())
			}
			return base.Clone()
		}
		if debug.Merge() {
			debug.Logf("merge %s: %v replaces %v\n", override.Path(), override, base)
		}
		return override.Clone()
	}
	if base.Kind() != ir.MapKind || base.IsEmptyMap() {
		if debug.Merge() {
			debug.Logf("merge %s: nothing to merge against\n", override.Path())
		}
		return override.Clone()
	}
	kvs := make([]ir.KeyVal, 0, len(base.Fields)+len(override.Fields))
	seen := make(map[string]bool, len(base.Fields))
	for i, bf := range base.Fields {
		bv := base.Values[i]
		key, ok := bf.KeyString()
		if !ok {
			kvs = append(kvs, ir.KeyVal{Key: bf.Clone(), Val: bv.Clone()})
			continue
		}
		seen[key] = true
		ov := override.Get(key)
		if ov == nil {
			kvs = append(kvs, ir.KeyVal{Key: bf.Clone(), Val: bv.Clone()})
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: bf.Clone(), Val: Merge(bv, ov)})
	}
	for i, of := range override.Fields {
		if key, ok := of.KeyString(); ok && seen[key] {
			continue
		}
		if debug.Merge() {
			debug.Logf("merge %s: adding %v\n", override.Values[i].Path(), of)
		}
		kvs = append(kvs, ir.KeyVal{Key: of.Clone(), Val: override.Values[i].Clone()})
	}
	return ir.FromKeyVals(kvs)
}
