package typed

import (
	"errors"
	"fmt"

	"github.com/signadot/tony-format/go-conf/ir"
)

// Kind classifies why a read failed.
type Kind int

const (
	EmptyKey Kind = iota
	NotAMap
	KeyMissing
	NotScalar
	NotSequence
	ConversionFailed
	ShapeMismatch
)

var (
	ErrEmptyKey         = errors.New("key is empty")
	ErrNotAMap          = errors.New("node is not a map")
	ErrKeyMissing       = errors.New("node does not have key")
	ErrNotScalar        = ir.ErrNotScalar
	ErrNotSequence      = errors.New("value is not a sequence")
	ErrConversionFailed = ir.ErrConvert
	ErrShapeMismatch    = errors.New("value does not have the shape")
)

var kindNames = [...]string{
	EmptyKey:         "EmptyKey",
	NotAMap:          "NotAMap",
	KeyMissing:       "KeyMissing",
	NotScalar:        "NotScalar",
	NotSequence:      "NotSequence",
	ConversionFailed: "ConversionFailed",
	ShapeMismatch:    "ShapeMismatch",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) sentinel() error {
	switch k {
	case EmptyKey:
		return ErrEmptyKey
	case NotAMap:
		return ErrNotAMap
	case KeyMissing:
		return ErrKeyMissing
	case NotScalar:
		return ErrNotScalar
	case NotSequence:
		return ErrNotSequence
	case ConversionFailed:
		return ErrConversionFailed
	}
	return ErrShapeMismatch
}

// Error describes a failed read. Kind is the reason at the level of the
// read that failed; Err, when set, is the failure underneath it, such as
// the sub-field of a composite that could not be read.
type Error struct {
	Kind Kind
	// Key is the key looked up, empty for node reads.
	Key string
	// Path locates the node the read was applied to.
	Path string
	// Type names the requested type.
	Type string
	Node *ir.Node
	Err  error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KeyMissing:
		msg = fmt.Sprintf("node does not have key %s", e.Key)
	case ShapeMismatch:
		msg = fmt.Sprintf("value does not have the shape of %s", e.Type)
	default:
		msg = e.Kind.sentinel().Error()
	}
	msg = fmt.Sprintf("%s at %s", msg, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (e *Error) Unwrap() error {
	return e.Err
}
