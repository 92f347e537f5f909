package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the JSONPath-style location of y within its root, such as
// "$.robot.footprint[2]".
func (y *Node) Path() string {
	if y == nil || y.Parent == nil {
		return "$"
	}
	switch y.Parent.Type {
	case ObjectType:
		return y.Parent.Path() + "." + pathString(y.ParentField)
	case ArrayType:
		return y.Parent.Path() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			buf.WriteString("." + pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses "$", "$.a.b", "$.a[0]" and "$.'a.b'" style paths. The
// leading '$' may be omitted.
func ParsePath(p string) (*Path, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	if p[0] != '$' {
		if p[0] != '.' && p[0] != '[' {
			p = "." + p
		}
		p = "$" + p
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			return fmt.Errorf("recursive descent is not supported")
		}
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		u64, err := strconv.ParseUint(frag[1:i+1], 10, 31)
		if err != nil {
			return fmt.Errorf("bad index %q", frag[1:i+1])
		}
		index := int(u64)
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		if i == 0 {
			return "", "", fmt.Errorf("expected field")
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// GetPath navigates from y along yPath. A missing field or index yields
// (nil, nil); traversing through a node of the wrong shape is an error.
// The returned node is part of y, not a copy.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		switch {
		case yp.Index != nil:
			if res.Kind() != SequenceKind {
				return nil, fmt.Errorf("%w: expected array at %s, got %s", ErrPath, res.Path(), res.Kind())
			}
			index := *yp.Index
			if index >= len(res.Values) {
				return nil, nil
			}
			res = res.Values[index]
		case yp.Field != nil:
			if res.Kind() != MapKind {
				return nil, fmt.Errorf("%w: expected object at %s, got %s", ErrPath, res.Path(), res.Kind())
			}
			res = Get(res, *yp.Field)
			if res == nil {
				return nil, nil
			}
		}
	}
	return res, nil
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}
