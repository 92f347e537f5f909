// Package geom holds the 2D and 3D geometry values that configuration
// documents describe: points, poses, homogeneous transforms, boxes,
// segments, polylines and polygons.
//
// Angles are radians. Pose2D keeps its heading in (-π, π]; see
// NormalizeAngle.
package geom
