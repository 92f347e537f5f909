package libdiff

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/encode"
	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

// Change is one difference. From is nil for insertions and To is nil for
// deletions.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, oneLine(c.To))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, oneLine(c.From))
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, oneLine(c.From), oneLine(c.To))
}

func oneLine(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeFormat(format.JSONFormat))
}

// Diff lists the changes turning from into to, in document order.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(from, to, &res)
	return res
}

func diff(from, to *ir.Node, res *[]Change) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		*res = append(*res, Change{Op: Insert, Path: to.Path(), To: to})
		return
	case to == nil:
		*res = append(*res, Change{Op: Delete, Path: from.Path(), From: from})
		return
	case from.Kind() == ir.MapKind && to.Kind() == ir.MapKind:
		diffObject(from, to, res)
		return
	}
	if !ir.Equal(from, to) {
		*res = append(*res, Change{Op: Replace, Path: from.Path(), From: from, To: to})
	}
}

// diffObject diffs the field names, then recurses on the values of the
// fields both sides share.
func diffObject(from, to *ir.Node, res *[]Change) {
	fieldMap := map[string]rune{}
	fromRunes := mapFieldsTo(fieldMap, from)
	toRunes := mapFieldsTo(fieldMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				diff(from.Values[fi], nil, res)
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				diff(from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				diff(nil, to.Values[ti], res)
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, yf := range node.Fields {
		f := fieldName(yf)
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

func fieldName(f *ir.Node) string {
	if s, ok := f.KeyString(); ok {
		return "." + s
	}
	if f.Type == ir.NullType {
		return "<<"
	}
	return encode.MustString(f, encode.EncodeFormat(format.JSONFormat))
}
