package typed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tony-format/go-conf/debug"
	"github.com/signadot/tony-format/go-conf/geom"
	"github.com/signadot/tony-format/go-conf/ir"
)

// Value is the set of types that can be read.
type Value interface {
	int | uint | float32 | float64 | bool | string |
		geom.Point2D | geom.Point3D | geom.XYTheta | geom.Pose2D |
		geom.TransformMatrix2D | geom.TransformMatrix3D | geom.Box |
		geom.LineSegment2D | geom.Polyline2D | geom.Polygon2D
}

// Read reads the value under key of the map node into out. It returns
// false and leaves out untouched when node is not a map, key is empty or
// missing, or the value cannot be read as T. A non-nil r receives one
// diagnostic per failed call.
func Read[T Value](node *ir.Node, key string, out *T, r Reporter) bool {
	v, err := lookup[T](node, key)
	if err != nil {
		report(r, err)
		return false
	}
	*out = v
	return true
}

// ReadNode is Read applied to node itself.
func ReadNode[T Value](node *ir.Node, out *T, r Reporter) bool {
	v, err := decode[T](node)
	if err != nil {
		report(r, err)
		return false
	}
	*out = v
	return true
}

// Has reports whether Read would succeed.
func Has[T Value](node *ir.Node, key string) bool {
	_, err := lookup[T](node, key)
	return err == nil
}

// Is reports whether ReadNode would succeed.
func Is[T Value](node *ir.Node) bool {
	_, err := decode[T](node)
	return err == nil
}

// Get returns the value under key, or def if it cannot be read.
func Get[T Value](node *ir.Node, key string, def T) T {
	if v, err := lookup[T](node, key); err == nil {
		return v
	}
	return def
}

// GetNode is Get applied to node itself.
func GetNode[T Value](node *ir.Node, def T) T {
	if v, err := decode[T](node); err == nil {
		return v
	}
	return def
}

func report(r Reporter, err *Error) {
	if debug.Read() {
		debug.Logf("read: %v\n", err)
	}
	if r != nil {
		r.Report(err)
	}
}

func lookup[T Value](node *ir.Node, key string) (T, *Error) {
	var zero T
	if key == "" {
		return zero, newError[T](EmptyKey, node, nil)
	}
	if node.Kind() != ir.MapKind {
		e := newError[T](NotAMap, node, fmt.Errorf("got %s", node.Kind()))
		e.Key = key
		return zero, e
	}
	child := node.Get(key)
	if child == nil {
		e := newError[T](KeyMissing, node, nil)
		e.Key = key
		return zero, e
	}
	v, e := decode[T](child)
	if e != nil {
		e.Key = key
		return zero, e
	}
	return v, nil
}

func decode[T Value](n *ir.Node) (T, *Error) {
	var (
		res  T
		err  error
		kind = ShapeMismatch
	)
	switch p := any(&res).(type) {
	case *int:
		*p, err = n.AsInt()
		kind = scalarKind(err)
	case *uint:
		*p, err = n.AsUint()
		kind = scalarKind(err)
	case *float32:
		*p, err = n.AsFloat32()
		kind = scalarKind(err)
	case *float64:
		*p, err = n.AsFloat64()
		kind = scalarKind(err)
	case *bool:
		*p, err = n.AsBool()
		kind = scalarKind(err)
	case *string:
		*p, err = n.AsString()
		kind = scalarKind(err)
	case *geom.Point2D:
		*p, kind, err = fromForms(n, point2D)
	case *geom.Point3D:
		*p, kind, err = fromForms(n, point3D)
	case *geom.XYTheta:
		*p, kind, err = fromForms(n, xyTheta)
	case *geom.Pose2D:
		var v geom.XYTheta
		v, kind, err = fromForms(n, xyTheta)
		*p = geom.PoseFromXYTheta(v)
	case *geom.TransformMatrix2D:
		*p, kind, err = fromForms(n, transform2D)
	case *geom.TransformMatrix3D:
		*p, kind, err = fromForms(n, transform3D)
	case *geom.Box:
		*p, kind, err = fromForms(n, box)
	case *geom.LineSegment2D:
		*p, kind, err = lineSegment(n)
	case *geom.Polyline2D:
		var vs []geom.Point2D
		vs, kind, err = vertices(n)
		*p = geom.Polyline2D{Vertices: vs}
	case *geom.Polygon2D:
		var vs []geom.Point2D
		vs, kind, err = vertices(n)
		*p = geom.Polygon2D{Vertices: vs}
	}
	if err != nil {
		var zero T
		return zero, newError[T](kind, n, err)
	}
	return res, nil
}

func scalarKind(err error) Kind {
	if errors.Is(err, ir.ErrNotScalar) {
		return NotScalar
	}
	return ConversionFailed
}

func newError[T Value](kind Kind, n *ir.Node, err error) *Error {
	return &Error{
		Kind: kind,
		Path: n.Path(),
		Type: typeName[T](),
		Node: n,
		Err:  err,
	}
}

func typeName[T Value]() string {
	var zero T
	return strings.TrimPrefix(fmt.Sprintf("%T", zero), "geom.")
}
