// Package parse reads YAML and JSON documents into ir nodes.
//
// Decoding uses the goccy/go-yaml syntax tree so key order and number
// spelling survive. Anchors are resolved by copying the anchored value
// into each alias. Merge keys ("<<") are not applied; they are kept as
// Null typed keys, see package ir.
//
// Trees already decoded by gopkg.in/yaml.v3 can be converted with
// FromYAMLNode.
package parse
