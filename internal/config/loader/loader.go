// Package loader reads configuration sources into generic maps.
//
// Each source (a TOML file, a YAML file, the environment) produces a
// map[string]any. The config package layers them over the defaults with
// Merge and then reads typed values out of the result by dotted path.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Loader produces one configuration layer. A source that does not exist
// yields a nil map and a nil error.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the part of a file system the loaders need. Tests use an
// in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

type osFS struct{}

func (osFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }
func (osFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS returns the operating system's file system.
func DefaultFS() FileSystem {
	return osFS{}
}

// readFile returns nil data for a file that does not exist.
func readFile(fsys FileSystem, path string) ([]byte, error) {
	data, err := fsys.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ParseError reports a syntax error in a configuration file. Line and
// Column are 1-based and zero when the decoder gave no position.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Path)
	if e.Line > 0 {
		fmt.Fprintf(&b, ":%d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ":%d", e.Column)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Merge layers maps left to right into a new map. Nested maps are merged
// key by key; any other value in a later layer replaces the earlier one.
// The inputs are not modified.
func Merge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		for k, v := range layer {
			over, isMap := v.(map[string]any)
			under, wasMap := out[k].(map[string]any)
			switch {
			case isMap && wasMap:
				out[k] = Merge(under, over)
			case isMap:
				out[k] = Merge(over)
			default:
				out[k] = v
			}
		}
	}
	return out
}

// Lookup returns the value at a dotted path such as "log.level".
func Lookup(data map[string]any, path string) (any, bool) {
	head, rest, nested := strings.Cut(path, ".")
	v, ok := data[head]
	if !ok || !nested {
		return v, ok
	}
	child, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Lookup(child, rest)
}

// setPath stores value at a dotted path, creating intermediate maps and
// replacing non-map values in the way.
func setPath(data map[string]any, path string, value any) {
	for {
		head, rest, nested := strings.Cut(path, ".")
		if !nested {
			data[head] = value
			return
		}
		child, ok := data[head].(map[string]any)
		if !ok {
			child = make(map[string]any)
			data[head] = child
		}
		data, path = child, rest
	}
}
