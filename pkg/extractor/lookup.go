package extractor

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Lookup resolves keys against the parsed content and returns the value as
// text. JSON keys walk nested objects (and arrays by index); XML keys are
// plain tag names walking child elements from the root element, so path
// syntax such as ".", "*" or "name[2]" matches nothing (use Find for paths).
// Without keys the whole document is returned: compact JSON, or the
// serialized XML tree. Objects and arrays are returned as compact JSON.
func Lookup(e Extractor, keys ...string) (string, bool) {
	switch x := e.(type) {
	case *XMLExtractor:
		if len(keys) == 0 {
			s, err := x.Tree().WriteToString()
			if err != nil {
				return "", false
			}
			return s, true
		}
		for _, k := range keys {
			if !isTagName(k) {
				return "", false
			}
		}
		el := x.Find(strings.Join(keys, "/"))
		if el == nil {
			return "", false
		}
		return el.Text(), true
	case *JSONExtractor:
		v, ok := walkJSON(x.ParsedData(), keys)
		if !ok {
			return "", false
		}
		return jsonText(v), true
	}
	return "", false
}

func walkJSON(v any, keys []string) (any, bool) {
	for _, k := range keys {
		switch node := v.(type) {
		case map[string]any:
			next, ok := node[k]
			if !ok {
				return nil, false
			}
			v = next
		case []any:
			i, err := strconv.Atoi(k)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			v = node[i]
		default:
			return nil, false
		}
	}
	return v, true
}

func jsonText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case nil:
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// isTagName rejects anything the element path syntax would interpret.
func isTagName(k string) bool {
	if k == "" || k == "." || k == ".." {
		return false
	}
	return !strings.ContainsAny(k, "/[]*@()='\" \t\n")
}
