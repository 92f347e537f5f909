package geom

import (
	"fmt"
	"math"
)

type Point2D struct {
	X, Y float64
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point2D) Dist(o Point2D) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

type Point3D struct {
	X, Y, Z float64
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// XYTheta is a planar position with a heading that is stored as given.
type XYTheta struct {
	X, Y, Theta float64
}

func (v XYTheta) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Theta)
}

type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

func (b Box) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g] x [%g, %g]", b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinZ, b.MaxZ)
}

func (b Box) Contains(p Point3D) bool {
	return b.MinX <= p.X && p.X <= b.MaxX &&
		b.MinY <= p.Y && p.Y <= b.MaxY &&
		b.MinZ <= p.Z && p.Z <= b.MaxZ
}
