// Package ir provides the in-memory tree that configuration documents are
// read into.
//
// # Node Structure
//
// A Node represents a single value. The Type field selects which other
// fields carry the value:
//
//   - NullType: null value, or an absent value
//   - BoolType: Bool
//   - NumberType: Int64 or Float64, with the literal text in Number when the
//     node was parsed from a document
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key for Values[i]
//
// Readers usually care about the coarser Kind of a node (null, scalar,
// sequence, map); see Node.Kind. A nil *Node has NullKind, so lookups that
// miss can be chained without checks.
//
// # Objects
//
// Object keys are nodes. String keys and integer keys are plain keys: they
// can be looked up with Get and are listed by Keys. A Null typed key is a
// merge key (YAML "<<") and may occur several times; keys of any other type
// are complex keys. Neither merge keys nor complex keys are ever matched by
// Get. Plain keys appear at most once.
//
// # Scalars
//
// AsInt, AsUint, AsFloat32, AsFloat64, AsBool and AsString convert a scalar
// node to a Go value. Conversion works on the text of the scalar, so a quoted
// "5" converts to an int and 5 converts to the string "5". Failures wrap
// ErrNotScalar or ErrConvert.
//
// # Paths
//
// Path returns a JSONPath-style location such as "$.base.footprint[0]" and
// GetPath navigates along one.
//
// # Thread Safety
//
// Node structures are not thread-safe. Concurrent reads of a tree nobody
// writes to are fine.
package ir
