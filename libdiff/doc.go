// Package libdiff reports the structural changes between two trees.
//
// # Usage
//
//	// list what an override changed in a base configuration
//	for _, c := range libdiff.Diff(base, merge.Merge(base, override)) {
//		fmt.Println(c)
//	}
//
// Maps are compared by aligning their key sequences, so a key that moved
// shows up as a deletion and an insertion. Values under keys present on
// both sides are compared recursively. Everything else is compared with
// [ir.Equal] and reported as a single replacement.
package libdiff
