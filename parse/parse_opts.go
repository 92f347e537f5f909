package parse

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"
)

// Pos is a 1-based line and column in the parsed text.
type Pos struct {
	Line, Column int
}

func (p *Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// DefaultMaxAliasNodes bounds the nodes copied by alias expansion in one
// document.
const DefaultMaxAliasNodes = 1 << 20

type parseOpts struct {
	format        format.Format
	positions     map[*ir.Node]*Pos
	maxAliasNodes int
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePositions records the position of every parsed node in m.
func ParsePositions(m map[*ir.Node]*Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseMaxAliasNodes sets the alias expansion bound. n <= 0 removes it.
func ParseMaxAliasNodes(n int) ParseOption {
	return func(o *parseOpts) {
		o.maxAliasNodes = n
	}
}
