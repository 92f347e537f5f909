package encode

import "github.com/signadot/tony-format/go-conf/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
