// Package envfile reads simple KEY=VALUE files.
//
// The format is deliberately small: one assignment per line, blank lines and
// lines starting with # are skipped, the line is split on the first '=' and
// both sides are trimmed. There is no quoting, escaping, export prefix or
// variable expansion.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"strings"
)

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("env file not found")

// File is an ordered set of key/value pairs read from an env file.
// Keys keep the position of their first appearance; later duplicates
// overwrite the value.
type File struct {
	keys   []string
	values map[string]string
}

// New returns an empty File.
func New() *File {
	return &File{values: map[string]string{}}
}

// Set assigns value to key, appending key if it is new.
func (f *File) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for key and whether it was present.
func (f *File) Get(key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

// Keys returns the keys in file order.
func (f *File) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Len returns the number of distinct keys.
func (f *File) Len() int {
	return len(f.keys)
}

// Map returns a copy of the pairs as a plain map.
func (f *File) Map() map[string]string {
	m := make(map[string]string, len(f.values))
	for k, v := range f.values {
		m[k] = v
	}
	return m
}

// WriteTo writes the pairs as KEY=VALUE lines in key order.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, k := range f.keys {
		n, err := fmt.Fprintf(w, "%s=%s\n", k, f.values[k])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Parse reads KEY=VALUE lines from r.
func Parse(r io.Reader) (*File, error) {
	f := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		f.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	return f, nil
}

// Load opens path and parses it. A missing file yields an empty File and an
// error wrapping ErrNotFound, which callers may treat as informational.
func Load(fsys FileSystem, path string) (*File, error) {
	r, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer func() { _ = r.Close() }()

	return Parse(r)
}
