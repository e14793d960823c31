package extractor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"dataextract/pkg/source"
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// JSONExtractor for .json files
type JSONExtractor struct {
	path string
	data any
}

// NewJSONExtractor decodes the whole file at path. Numbers are kept as
// json.Number so integer values stay exact.
func NewJSONExtractor(fsys source.FileSystem, path string) (*JSONExtractor, error) {
	f, err := source.OrLocal(fsys).Open(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, ioError(path, err)
	}

	if !utf8.Valid(b) {
		return nil, parseError(path, errInvalidUTF8)
	}

	data, err := decodeJSON(b)
	if err != nil {
		return nil, parseError(path, err)
	}

	return &JSONExtractor{path: path, data: data}, nil
}

func decodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	// Only one top-level value is allowed.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("invalid character after top-level value at offset %d", dec.InputOffset())
		}
		return nil, err
	}
	return v, nil
}

func (e *JSONExtractor) Path() string   { return e.path }
func (e *JSONExtractor) Format() Format { return FormatJSON }

// ParsedData returns the decoded document: map[string]any, []any, string,
// json.Number, bool or nil.
func (e *JSONExtractor) ParsedData() any {
	return e.data
}

// Object returns the top-level mapping when the document root is an object.
func (e *JSONExtractor) Object() (map[string]any, bool) {
	m, ok := e.data.(map[string]any)
	return m, ok
}
