package extractor

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"dataextract/pkg/source"
)

var (
	errNoRoot       = errors.New("document has no root element")
	errJunkAfterDoc = errors.New("junk after document element")

	utf8BOM = []byte("\xef\xbb\xbf")

	// General entities declared with a literal value in an internal subset.
	// External and parameter entities are not resolved.
	entityDecl = regexp.MustCompile(`<!ENTITY\s+([^\s%"'>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)
)

// XMLExtractor for .xml files. Callers navigate the tree directly.
type XMLExtractor struct {
	path string
	tree *etree.Document
}

// NewXMLExtractor parses the whole file at path into a tree.
func NewXMLExtractor(fsys source.FileSystem, path string) (*XMLExtractor, error) {
	f, err := source.OrLocal(fsys).Open(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, ioError(path, err)
	}

	b = bytes.TrimPrefix(b, utf8BOM)

	entities, err := wellFormed(b)
	if err != nil {
		return nil, parseError(path, err)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.Entity = entities
	if err := doc.ReadFromBytes(b); err != nil {
		return nil, parseError(path, err)
	}
	if doc.Root() == nil {
		return nil, parseError(path, errNoRoot)
	}

	return &XMLExtractor{path: path, tree: doc}, nil
}

func (e *XMLExtractor) Path() string   { return e.path }
func (e *XMLExtractor) Format() Format { return FormatXML }

// ParsedData returns the document tree, same as Tree.
func (e *XMLExtractor) ParsedData() any {
	return e.tree
}

func (e *XMLExtractor) Tree() *etree.Document {
	return e.tree
}

// Root returns the document's top element.
func (e *XMLExtractor) Root() *etree.Element {
	return e.tree.Root()
}

// Find returns the first element matching path relative to the root element,
// e.g. "name" for a direct child or "author/last" to descend. Nil if absent
// or if path is not a valid element path.
func (e *XMLExtractor) Find(path string) *etree.Element {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil
	}
	return e.tree.Root().FindElementPath(p)
}

// wellFormed runs the strict decoder over the whole document and returns the
// internal entities it declares. etree reads raw tokens and does not check
// that end tags match or that there is exactly one root element.
func wellFormed(b []byte) (map[string]string, error) {
	entities := make(map[string]string)

	dec := xml.NewDecoder(bytes.NewReader(b))
	dec.CharsetReader = charset.NewReaderLabel
	dec.Entity = entities

	depth := 0
	seenRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if !seenRoot {
				return nil, errNoRoot
			}
			return entities, nil
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && seenRoot {
				return nil, fmt.Errorf("%w: second root element <%s>", errJunkAfterDoc, t.Name.Local)
			}
			seenRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: text outside the root element", errJunkAfterDoc)
			}
		case xml.Directive:
			if depth == 0 && !seenRoot && strings.HasPrefix(string(t), "DOCTYPE") {
				for _, m := range entityDecl.FindAllStringSubmatch(string(t), -1) {
					entities[m[1]] = m[2] + m[3]
				}
			}
		}
	}
}
