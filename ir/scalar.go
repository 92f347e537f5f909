package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Text returns the canonical text of a scalar node. Numbers keep their
// literal text when it is known. Non-scalar nodes have no text.
func (y *Node) Text() string {
	if y == nil {
		return ""
	}
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Number != "" {
			return y.Number
		}
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
	}
	return ""
}

func (y *Node) scalarText() (string, error) {
	if y.Kind() != ScalarKind {
		return "", fmt.Errorf("%w: got %s", ErrNotScalar, y.Kind())
	}
	return y.Text(), nil
}

func convErr(text, typ string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %q to %s", ErrConvert, text, typ)
	}
	return fmt.Errorf("%w: %q to %s: %w", ErrConvert, text, typ, err)
}

func (y *Node) AsInt() (int, error) {
	s, err := y.scalarText()
	if err != nil {
		return 0, err
	}
	if y.Type == NumberType && y.Number == "" && y.Int64 != nil {
		return int(*y.Int64), nil
	}
	i, err := parseInt(s, strconv.IntSize)
	if err != nil {
		return 0, convErr(s, "int", err)
	}
	return int(i), nil
}

func (y *Node) AsUint() (uint, error) {
	s, err := y.scalarText()
	if err != nil {
		return 0, err
	}
	if strings.HasPrefix(s, "-") {
		return 0, convErr(s, "uint", nil)
	}
	u, err := parseUint(strings.TrimPrefix(s, "+"), strconv.IntSize)
	if err != nil {
		return 0, convErr(s, "uint", err)
	}
	return uint(u), nil
}

func (y *Node) AsFloat64() (float64, error) {
	s, err := y.scalarText()
	if err != nil {
		return 0, err
	}
	if y.Type == NumberType && y.Number == "" {
		switch {
		case y.Float64 != nil:
			return *y.Float64, nil
		case y.Int64 != nil:
			return float64(*y.Int64), nil
		}
	}
	f, err := parseFloat(s, 64)
	if err != nil {
		return 0, convErr(s, "float64", err)
	}
	return f, nil
}

func (y *Node) AsFloat32() (float32, error) {
	s, err := y.scalarText()
	if err != nil {
		return 0, err
	}
	f, err := parseFloat(s, 32)
	if err != nil {
		return 0, convErr(s, "float32", err)
	}
	return float32(f), nil
}

func (y *Node) AsBool() (bool, error) {
	if y.Kind() == ScalarKind && y.Type == BoolType {
		return y.Bool, nil
	}
	s, err := y.scalarText()
	if err != nil {
		return false, err
	}
	b, ok := boolWords[s]
	if !ok {
		return false, convErr(s, "bool", nil)
	}
	return b, nil
}

func (y *Node) AsString() (string, error) {
	return y.scalarText()
}

var boolWords = map[string]bool{}

func init() {
	for _, w := range []string{"true", "yes", "on", "y"} {
		boolWords[w] = true
		boolWords[strings.ToUpper(w)] = true
		boolWords[strings.ToUpper(w[:1])+w[1:]] = true
	}
	for _, w := range []string{"false", "no", "off", "n"} {
		boolWords[w] = false
		boolWords[strings.ToUpper(w)] = false
		boolWords[strings.ToUpper(w[:1])+w[1:]] = false
	}
}

// parseInt is strconv.ParseInt with base prefixes but without digit
// separators.
func parseInt(s string, bitSize int) (int64, error) {
	if strings.Contains(s, "_") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(s, 0, bitSize)
}

func parseUint(s string, bitSize int) (uint64, error) {
	if strings.Contains(s, "_") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 0, bitSize)
}

// parseFloat accepts the YAML spellings of infinity and NaN on top of
// strconv's syntax.
func parseFloat(s string, bitSize int) (float64, error) {
	switch s {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), nil
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), nil
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), nil
	}
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "inf", "infinity", "nan":
		return 0, strconv.ErrSyntax
	}
	if strings.Contains(s, "_") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, bitSize)
}
