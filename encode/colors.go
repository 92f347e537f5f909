package encode

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

// Colors maps YAML token classes to terminal attributes.
type Colors struct {
	Key    color.Attribute
	String color.Attribute
	Number color.Attribute
	Bool   color.Attribute
	Anchor color.Attribute
	Alias  color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		Key:    color.FgHiCyan,
		String: color.FgHiGreen,
		Number: color.FgHiMagenta,
		Bool:   color.FgHiYellow,
		Anchor: color.FgHiBlue,
		Alias:  color.FgHiBlue,
	}
}

// Colorize re-tokenizes YAML text and wraps each token class in its
// escape sequence.
func (c *Colors) Colorize(src string) string {
	var p printer.Printer
	p.MapKey = property(c.Key)
	p.String = property(c.String)
	p.Number = property(c.Number)
	p.Bool = property(c.Bool)
	p.Anchor = property(c.Anchor)
	p.Alias = property(c.Alias)
	return p.PrintTokens(lexer.Tokenize(src))
}

func property(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		return &printer.Property{
			Prefix: escape(attr),
			Suffix: escape(color.Reset),
		}
	}
}

func escape(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}
