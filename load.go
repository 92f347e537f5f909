package conf

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tony-format/go-conf/format"
	"github.com/signadot/tony-format/go-conf/ir"
	"github.com/signadot/tony-format/go-conf/merge"
	"github.com/signadot/tony-format/go-conf/parse"
)

// Doc is one layer of a configuration.
type Doc struct {
	// Name identifies the document in errors.
	Name   string
	Data   []byte
	Format format.Format
}

// LoadDocs parses docs and merges them in order. With no documents it
// returns a null node.
func LoadDocs(docs ...Doc) (*ir.Node, error) {
	if len(docs) == 0 {
		return ir.Null(), nil
	}
	nodes := make([]*ir.Node, len(docs))
	for i := range docs {
		doc := &docs[i]
		node, err := parse.Parse(doc.Data, parse.ParseFormat(doc.Format))
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", doc.Name, err)
		}
		nodes[i] = node
	}
	return merge.MergeAll(nodes[0], nodes[1:]...), nil
}

// Load is LoadDocs on YAML documents. JSON documents are YAML too.
func Load(docs ...[]byte) (*ir.Node, error) {
	ds := make([]Doc, len(docs))
	for i, d := range docs {
		ds[i] = Doc{Name: fmt.Sprintf("document %d", i), Data: d}
	}
	return LoadDocs(ds...)
}

// LoadFiles is LoadDocs on the contents of the named files, each in the
// format given by its suffix. The path "-" reads standard input.
func LoadFiles(paths ...string) (*ir.Node, error) {
	ds := make([]Doc, len(paths))
	for i, p := range paths {
		d, err := ReadDoc(p, os.Stdin)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return LoadDocs(ds...)
}

// ReadDoc reads the file at p, or stdin when p is "-", as a Doc in the
// format given by the suffix of p.
func ReadDoc(p string, stdin io.Reader) (Doc, error) {
	var (
		d   []byte
		err error
	)
	if p == "-" {
		d, err = io.ReadAll(stdin)
	} else {
		d, err = os.ReadFile(p)
	}
	if err != nil {
		return Doc{}, fmt.Errorf("could not read %q: %w", p, err)
	}
	return Doc{Name: p, Data: d, Format: format.FromPath(p)}, nil
}
