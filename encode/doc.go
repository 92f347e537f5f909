// Package encode renders ir nodes as YAML or JSON text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("x"), Val: ir.FromFloat(1.5)},
//	})
//	err := encode.Encode(node, os.Stdout)
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// Object key order is kept as it is in the tree. Numbers parsed from a
// document are written with their original literal text.
//
// # Related Packages
//
//   - github.com/signadot/tony-format/go-conf/ir - IR representation
//   - github.com/signadot/tony-format/go-conf/parse - Parse text to IR
package encode
