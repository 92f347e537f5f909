// Package debug holds environment controlled tracing switches.
package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/signadot/tony-format/go-conf/encode"
	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"
)

type debug struct {
	Merge bool
	Read  bool
	Parse bool
	Load  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("O_DEBUG_MERGE")
	d.Read = boolEnv("O_DEBUG_READ")
	d.Parse = boolEnv("O_DEBUG_PARSE")
	d.Load = boolEnv("O_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Read() bool {
	return d.Read
}
func Parse() bool {
	return d.Parse
}
func Load() bool {
	return d.Load
}

// Logf writes to stderr. Node arguments are rendered as single line JSON.
func Logf(format string, args ...any) {
	for i, a := range args {
		if n, ok := a.(*ir.Node); ok {
			args[i] = nodeString(n)
		}
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

func nodeString(n *ir.Node) (res string) {
	defer func() {
		if r := recover(); r != nil {
			res = fmt.Sprintf("<%s at %s>", n.Kind(), n.Path())
		}
	}()
	return encode.MustString(n, encode.EncodeFormat(format.JSONFormat))
}
