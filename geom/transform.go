package geom

import (
	"fmt"
	"math"
)

// TransformMatrix2D is a row-major 3x3 homogeneous planar transform.
type TransformMatrix2D struct {
	M [9]float64
}

func NewTransformMatrix2D(x, y, theta float64) TransformMatrix2D {
	var tf TransformMatrix2D
	tf.Update(x, y, theta)
	return tf
}

// Update sets the transform to a translation by (x, y) after a rotation by
// theta.
func (tf *TransformMatrix2D) Update(x, y, theta float64) {
	c, s := math.Cos(theta), math.Sin(theta)
	tf.M = [9]float64{
		c, -s, x,
		s, c, y,
		0, 0, 1,
	}
}

// UpdateQuaternion is Update with the heading taken as the yaw of the
// quaternion (qx, qy, qz, qw).
func (tf *TransformMatrix2D) UpdateQuaternion(x, y, qx, qy, qz, qw float64) {
	_, _, yaw := quatToRPY(qx, qy, qz, qw)
	tf.Update(x, y, yaw)
}

func (tf TransformMatrix2D) X() float64     { return tf.M[2] }
func (tf TransformMatrix2D) Y() float64     { return tf.M[5] }
func (tf TransformMatrix2D) Theta() float64 { return math.Atan2(tf.M[3], tf.M[0]) }

func (tf TransformMatrix2D) Apply(p Point2D) Point2D {
	return Point2D{
		X: tf.M[0]*p.X + tf.M[1]*p.Y + tf.M[2],
		Y: tf.M[3]*p.X + tf.M[4]*p.Y + tf.M[5],
	}
}

func (tf TransformMatrix2D) ApproxEqual(o TransformMatrix2D, tol float64) bool {
	return approx(tf.M[:], o.M[:], tol)
}

func (tf TransformMatrix2D) String() string {
	return fmt.Sprintf("(x=%g, y=%g, theta=%g)", tf.X(), tf.Y(), tf.Theta())
}

// TransformMatrix3D is a row-major 4x4 homogeneous transform.
type TransformMatrix3D struct {
	M [16]float64
}

func NewTransformMatrix3D(x, y, z, roll, pitch, yaw float64) TransformMatrix3D {
	var tf TransformMatrix3D
	tf.Update(x, y, z, roll, pitch, yaw)
	return tf
}

// Update sets the rotation to Rz(yaw)·Ry(pitch)·Rx(roll) and the
// translation to (x, y, z).
func (tf *TransformMatrix3D) Update(x, y, z, roll, pitch, yaw float64) {
	cr, sr := math.Cos(roll), math.Sin(roll)
	cp, sp := math.Cos(pitch), math.Sin(pitch)
	cy, sy := math.Cos(yaw), math.Sin(yaw)
	tf.M = [16]float64{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr, x,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr, y,
		-sp, cp * sr, cp * cr, z,
		0, 0, 0, 1,
	}
}

// UpdateQuaternion sets the rotation from (qx, qy, qz, qw), normalized
// first. A zero quaternion gives the identity rotation.
func (tf *TransformMatrix3D) UpdateQuaternion(x, y, z, qx, qy, qz, qw float64) {
	n := math.Sqrt(qx*qx + qy*qy + qz*qz + qw*qw)
	if n == 0 {
		qx, qy, qz, qw = 0, 0, 0, 1
	} else {
		qx, qy, qz, qw = qx/n, qy/n, qz/n, qw/n
	}
	tf.M = [16]float64{
		1 - 2*(qy*qy+qz*qz), 2 * (qx*qy - qz*qw), 2 * (qx*qz + qy*qw), x,
		2 * (qx*qy + qz*qw), 1 - 2*(qx*qx+qz*qz), 2 * (qy*qz - qx*qw), y,
		2 * (qx*qz - qy*qw), 2 * (qy*qz + qx*qw), 1 - 2*(qx*qx+qy*qy), z,
		0, 0, 0, 1,
	}
}

func (tf TransformMatrix3D) X() float64 { return tf.M[3] }
func (tf TransformMatrix3D) Y() float64 { return tf.M[7] }
func (tf TransformMatrix3D) Z() float64 { return tf.M[11] }

// RollPitchYaw recovers the angles passed to Update. Pitch is in
// [-π/2, π/2].
func (tf TransformMatrix3D) RollPitchYaw() (roll, pitch, yaw float64) {
	m := tf.M
	pitch = math.Asin(max(-1, min(1, -m[8])))
	roll = math.Atan2(m[9], m[10])
	yaw = math.Atan2(m[4], m[0])
	return roll, pitch, yaw
}

func (tf TransformMatrix3D) Apply(p Point3D) Point3D {
	m := tf.M
	return Point3D{
		X: m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3],
		Y: m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7],
		Z: m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11],
	}
}

func (tf TransformMatrix3D) ApproxEqual(o TransformMatrix3D, tol float64) bool {
	return approx(tf.M[:], o.M[:], tol)
}

func (tf TransformMatrix3D) String() string {
	r, p, y := tf.RollPitchYaw()
	return fmt.Sprintf("(x=%g, y=%g, z=%g, roll=%g, pitch=%g, yaw=%g)", tf.X(), tf.Y(), tf.Z(), r, p, y)
}

// QuaternionFromRPY returns (qx, qy, qz, qw) for the rotation
// Rz(yaw)·Ry(pitch)·Rx(roll).
func QuaternionFromRPY(roll, pitch, yaw float64) (qx, qy, qz, qw float64) {
	cr, sr := math.Cos(roll/2), math.Sin(roll/2)
	cp, sp := math.Cos(pitch/2), math.Sin(pitch/2)
	cy, sy := math.Cos(yaw/2), math.Sin(yaw/2)
	qw = cr*cp*cy + sr*sp*sy
	qx = sr*cp*cy - cr*sp*sy
	qy = cr*sp*cy + sr*cp*sy
	qz = cr*cp*sy - sr*sp*cy
	return qx, qy, qz, qw
}

func quatToRPY(qx, qy, qz, qw float64) (roll, pitch, yaw float64) {
	roll = math.Atan2(2*(qw*qx+qy*qz), 1-2*(qx*qx+qy*qy))
	pitch = math.Asin(max(-1, min(1, 2*(qw*qy-qz*qx))))
	yaw = math.Atan2(2*(qw*qz+qx*qy), 1-2*(qy*qy+qz*qz))
	return roll, pitch, yaw
}

func approx(a, b []float64, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}
