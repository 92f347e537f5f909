package ir

import (
	"errors"

	"github.com/signadot/tony-format/go-conf/format"
)

var (
	ErrParse     = errors.New("parse error")
	ErrBadFormat = format.ErrBadFormat

	ErrNotScalar = errors.New("value is not scalar")
	ErrConvert   = errors.New("could not convert value")
	ErrPath      = errors.New("bad path")
)
