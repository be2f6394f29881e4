// Package requirements loads the list of required variable names.
//
// The list is a top-level array of strings. JSON is the default format and
// tolerates comments and trailing commas; files ending in .yaml or .yml are
// read as a YAML sequence.
package requirements

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound means the requirements file does not exist.
	ErrNotFound = errors.New("requirements file not found")
	// ErrParse means the file could not be read as an array of strings.
	ErrParse = errors.New("invalid requirements file")
)

// LoadError describes why a requirements file could not be loaded.
type LoadError struct {
	Path string
	Kind error // ErrNotFound or ErrParse
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Load reads path and returns the required names in file order.
// Duplicates are preserved.
func Load(fsys FileSystem, path string) ([]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: err}
		}
		return nil, &LoadError{Path: path, Kind: ErrParse, Err: err}
	}

	var names []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		names, err = parseYAML(data)
	default:
		names, err = parseJSON(data)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Kind: ErrParse, Err: err}
	}
	return names, nil
}

func parseJSON(data []byte) ([]string, error) {
	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON syntax")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("expected an array of strings, got %s", jsonKind(doc))
	}

	names := []string{}
	var elemErr error
	i := 0
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.Type != gjson.String {
			elemErr = fmt.Errorf("element %d is %s, not a string", i, jsonKind(value))
			return false
		}
		names = append(names, value.Str)
		i++
		return true
	})
	if elemErr != nil {
		return nil, elemErr
	}
	return names, nil
}

func jsonKind(r gjson.Result) string {
	switch {
	case r.IsArray():
		return "an array"
	case r.IsObject():
		return "an object"
	case r.Type == gjson.Null:
		return "null"
	case r.Type == gjson.Number:
		return "a number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "a boolean"
	default:
		return "a string"
	}
}

func parseYAML(data []byte) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty YAML document")
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a sequence of strings at line %d", seq.Line)
	}

	names := make([]string, 0, len(seq.Content))
	for i, item := range seq.Content {
		if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
			return nil, fmt.Errorf("element %d at line %d is not a string", i, item.Line)
		}
		names = append(names, item.Value)
	}
	return names, nil
}
