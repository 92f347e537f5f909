package typed

import (
	"maps"
	"slices"
	"strings"

	"github.com/signadot/tony-format/go-conf/geom"
	"github.com/signadot/tony-format/go-conf/ir"
)

// Reader reads a node as a type chosen at run time.
type Reader func(n *ir.Node, r Reporter) (any, bool)

func reader[T Value]() Reader {
	return func(n *ir.Node, r Reporter) (any, bool) {
		var v T
		if !ReadNode(n, &v, r) {
			return nil, false
		}
		return v, true
	}
}

var readers = map[string]Reader{
	"int":           reader[int](),
	"uint":          reader[uint](),
	"float":         reader[float32](),
	"double":        reader[float64](),
	"bool":          reader[bool](),
	"string":        reader[string](),
	"point2d":       reader[geom.Point2D](),
	"point3d":       reader[geom.Point3D](),
	"xytheta":       reader[geom.XYTheta](),
	"pose2d":        reader[geom.Pose2D](),
	"tfmat2d":       reader[geom.TransformMatrix2D](),
	"tfmat3d":       reader[geom.TransformMatrix3D](),
	"box":           reader[geom.Box](),
	"linesegment2d": reader[geom.LineSegment2D](),
	"polyline2d":    reader[geom.Polyline2D](),
	"polygon2d":     reader[geom.Polygon2D](),
}

// Lookup returns the Reader registered under name, ignoring case.
func Lookup(name string) (Reader, bool) {
	r, ok := readers[strings.ToLower(name)]
	return r, ok
}

func Names() []string {
	return slices.Sorted(maps.Keys(readers))
}
