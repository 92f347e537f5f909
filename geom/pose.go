package geom

import (
	"fmt"
	"math"
)

// NormalizeAngle maps a to the equivalent angle in (-π, π]. Both π and -π
// map to π.
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// Pose2D is a planar position with a heading in (-π, π]. Build it with
// NewPose2D or PoseFromXYTheta to keep the heading normalized.
type Pose2D struct {
	X, Y, Theta float64
}

func NewPose2D(x, y, theta float64) Pose2D {
	return Pose2D{X: x, Y: y, Theta: NormalizeAngle(theta)}
}

func PoseFromXYTheta(v XYTheta) Pose2D {
	return NewPose2D(v.X, v.Y, v.Theta)
}

func (p Pose2D) XYTheta() XYTheta {
	return XYTheta{X: p.X, Y: p.Y, Theta: p.Theta}
}

func (p Pose2D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Theta)
}

// ApproxEqual compares positions and headings within tol. Headings are
// compared on the circle, so π and -π+ε are close.
func (p Pose2D) ApproxEqual(o Pose2D, tol float64) bool {
	return math.Abs(p.X-o.X) <= tol &&
		math.Abs(p.Y-o.Y) <= tol &&
		math.Abs(NormalizeAngle(p.Theta-o.Theta)) <= tol
}
