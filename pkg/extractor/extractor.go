package extractor

import (
	"path/filepath"
	"strings"

	"dataextract/pkg/source"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Extractor holds the fully parsed content of one file.
type Extractor interface {
	Path() string
	Format() Format
	// ParsedData returns the decoded JSON value or, for XML, the document tree.
	ParsedData() any
}

// Factory builds extractors. The zero value reads from the local file system
// and dispatches on the raw path suffix.
type Factory struct {
	FS source.FileSystem
	// Strict dispatches on the real extension (".json", ".xml") instead of
	// the trailing characters of the path.
	Strict bool
}

// DefaultFactory is used by NewExtractor.
var DefaultFactory = &Factory{}

// NewExtractor returns the appropriate extractor for path, already holding
// the parsed file.
func NewExtractor(path string) (Extractor, error) {
	return DefaultFactory.Create(path)
}

// Create picks the extractor for path and constructs it. Unsupported paths
// fail before the file system is touched.
func (f *Factory) Create(path string) (Extractor, error) {
	format, ok := Supported(path, f.Strict)
	if !ok {
		return nil, &Error{Code: CodeUnsupportedFormat, Path: path}
	}

	var (
		e   Extractor
		err error
	)
	switch format {
	case FormatJSON:
		var je *JSONExtractor
		je, err = NewJSONExtractor(f.FS, path)
		e = je
	default:
		var xe *XMLExtractor
		xe, err = NewXMLExtractor(f.FS, path)
		e = xe
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Supported reports which format the factory would pick for path.
// Non-strict matching checks the literal suffix, so "myxml" counts as XML.
func Supported(path string, strict bool) (Format, bool) {
	if strict {
		switch filepath.Ext(path) {
		case ".json":
			return FormatJSON, true
		case ".xml":
			return FormatXML, true
		}
		return "", false
	}

	if strings.HasSuffix(path, "json") {
		return FormatJSON, true
	}
	if strings.HasSuffix(path, "xml") {
		return FormatXML, true
	}
	return "", false
}
