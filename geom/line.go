package geom

import (
	"fmt"
	"strings"
)

type LineSegment2D struct {
	Start, End Point2D
}

func (l LineSegment2D) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}

func (l LineSegment2D) Length() float64 {
	return l.Start.Dist(l.End)
}

// Polyline2D is an open chain of vertices.
type Polyline2D struct {
	Vertices []Point2D
}

func (p Polyline2D) String() string {
	return vertexString(p.Vertices)
}

func (p Polyline2D) Equal(o Polyline2D) bool {
	return vertsEqual(p.Vertices, o.Vertices)
}

// Polygon2D is a closed chain of vertices; the last vertex connects back
// to the first and is not repeated.
type Polygon2D struct {
	Vertices []Point2D
}

func (p Polygon2D) String() string {
	return vertexString(p.Vertices)
}

func (p Polygon2D) Equal(o Polygon2D) bool {
	return vertsEqual(p.Vertices, o.Vertices)
}

// Area is the signed shoelace area, positive for counter-clockwise vertices.
func (p Polygon2D) Area() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := range n {
		a, b := p.Vertices[i], p.Vertices[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func vertsEqual(a, b []Point2D) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func vertexString(vs []Point2D) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
