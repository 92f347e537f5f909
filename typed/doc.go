// Package typed reads typed values out of [ir.Node] trees.
//
// Every read comes in a by-key form, which looks the key up in a map node,
// and a node form, which inspects the node directly:
//
//	Read[T](node, key, &out, r)   ReadNode[T](node, &out, r)
//	Has[T](node, key)             Is[T](node)
//	Get[T](node, key, def)        GetNode[T](node, def)
//
// T is a scalar (int, uint, float32, float64, bool, string) or one of the
// geometry types of package geom. Reads never panic and never write a
// partial value: on failure the output is left as it was and, when a
// [Reporter] is given, exactly one [*Error] describing the failure is
// reported to it.
//
// Geometry types are read from maps of numeric fields:
//
//	Point2D            x y
//	Point3D            x y z
//	XYTheta            x y theta
//	Pose2D             x y theta, with theta normalized into (-π, π]
//	TransformMatrix2D  x y theta, or x y qx qy qz qw
//	TransformMatrix3D  x y z roll pitch yaw, or x y z qx qy qz qw
//	Box                min_x max_x min_y max_y min_z max_z
//	LineSegment2D      start and end, each a Point2D
//
// Polyline2D and Polygon2D are read from a sequence of Point2D maps.
package typed
