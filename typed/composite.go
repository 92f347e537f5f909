package typed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/tony-format/go-conf/geom"
	"github.com/signadot/tony-format/go-conf/ir"
)

// form is one parameterization of a composite: the float fields it is
// read from and how to build the value from them.
type form[T any] struct {
	name  string
	keys  []string
	build func(v []float64) T
}

var (
	point2D = []form[geom.Point2D]{{
		name: "xy",
		keys: []string{"x", "y"},
		build: func(v []float64) geom.Point2D {
			return geom.Point2D{X: v[0], Y: v[1]}
		},
	}}
	point3D = []form[geom.Point3D]{{
		name: "xyz",
		keys: []string{"x", "y", "z"},
		build: func(v []float64) geom.Point3D {
			return geom.Point3D{X: v[0], Y: v[1], Z: v[2]}
		},
	}}
	xyTheta = []form[geom.XYTheta]{{
		name: "xytheta",
		keys: []string{"x", "y", "theta"},
		build: func(v []float64) geom.XYTheta {
			return geom.XYTheta{X: v[0], Y: v[1], Theta: v[2]}
		},
	}}
	transform2D = []form[geom.TransformMatrix2D]{
		{
			name: "euler",
			keys: []string{"x", "y", "theta"},
			build: func(v []float64) geom.TransformMatrix2D {
				return geom.NewTransformMatrix2D(v[0], v[1], v[2])
			},
		},
		{
			name: "quaternion",
			keys: []string{"x", "y", "qx", "qy", "qz", "qw"},
			build: func(v []float64) geom.TransformMatrix2D {
				var tf geom.TransformMatrix2D
				tf.UpdateQuaternion(v[0], v[1], v[2], v[3], v[4], v[5])
				return tf
			},
		},
	}
	transform3D = []form[geom.TransformMatrix3D]{
		{
			name: "euler",
			keys: []string{"x", "y", "z", "roll", "pitch", "yaw"},
			build: func(v []float64) geom.TransformMatrix3D {
				return geom.NewTransformMatrix3D(v[0], v[1], v[2], v[3], v[4], v[5])
			},
		},
		{
			name: "quaternion",
			keys: []string{"x", "y", "z", "qx", "qy", "qz", "qw"},
			build: func(v []float64) geom.TransformMatrix3D {
				var tf geom.TransformMatrix3D
				tf.UpdateQuaternion(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
				return tf
			},
		},
	}
	box = []form[geom.Box]{{
		name: "bounds",
		keys: []string{"min_x", "max_x", "min_y", "max_y", "min_z", "max_z"},
		build: func(v []float64) geom.Box {
			return geom.Box{MinX: v[0], MaxX: v[1], MinY: v[2], MaxY: v[3], MinZ: v[4], MaxZ: v[5]}
		},
	}}
)

// fromForms builds T from the first form whose fields all read as
// float64. Failures of the individual forms are joined into the returned
// error.
func fromForms[T any](n *ir.Node, forms []form[T]) (T, Kind, error) {
	var zero T
	if n.Kind() != ir.MapKind {
		return zero, NotAMap, fmt.Errorf("got %s", n.Kind())
	}
	errs := make([]error, 0, len(forms))
	for _, f := range forms {
		v, err := floats(n, f.keys)
		if err == nil {
			return f.build(v), 0, nil
		}
		if len(forms) == 1 {
			return zero, ShapeMismatch, err
		}
		errs = append(errs, fmt.Errorf("%s form (%s): %w", f.name, strings.Join(f.keys, ", "), err))
	}
	return zero, ShapeMismatch, errors.Join(errs...)
}

func floats(n *ir.Node, keys []string) ([]float64, error) {
	res := make([]float64, len(keys))
	for i, k := range keys {
		v, err := lookup[float64](n, k)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func lineSegment(n *ir.Node) (geom.LineSegment2D, Kind, error) {
	var zero geom.LineSegment2D
	if n.Kind() != ir.MapKind {
		return zero, NotAMap, fmt.Errorf("got %s", n.Kind())
	}
	start, err := lookup[geom.Point2D](n, "start")
	if err != nil {
		return zero, ShapeMismatch, err
	}
	end, err := lookup[geom.Point2D](n, "end")
	if err != nil {
		return zero, ShapeMismatch, err
	}
	return geom.LineSegment2D{Start: start, End: end}, 0, nil
}

func vertices(n *ir.Node) ([]geom.Point2D, Kind, error) {
	if n.Kind() != ir.SequenceKind {
		return nil, NotSequence, fmt.Errorf("got %s", n.Kind())
	}
	res := make([]geom.Point2D, len(n.Values))
	for i, v := range n.Values {
		p, err := decode[geom.Point2D](v)
		if err != nil {
			return nil, ShapeMismatch, err
		}
		res[i] = p
	}
	return res, 0, nil
}
