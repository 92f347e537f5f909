package parse

import (
	"fmt"

	"github.com/signadot/tony-format/go-conf/ir"
)

var (
	ErrParse         = ir.ErrParse
	ErrDuplicateKey  = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrUnknownAlias  = fmt.Errorf("%w: unknown alias", ErrParse)
	ErrBadTaggedNode = fmt.Errorf("%w: value does not match its tag", ErrParse)
	ErrAliasLimit    = fmt.Errorf("%w: too many nodes from alias expansion", ErrParse)
)
