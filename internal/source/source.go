// Package source owns named program texts: where they come from (files,
// stdin, inline evaluation strings) and how bare names resolve against an
// ordered list of load directories.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Buffer is a named, immutable program text.
type Buffer struct {
	Name string
	Text string
}

func (b Buffer) String() string { return fmt.Sprintf("%v (%v bytes)", b.Name, len(b.Text)) }

// Text wraps literal program text in a named Buffer.
func Text(name, text string) Buffer { return Buffer{Name: name, Text: text} }

// ReadFile loads path into a Buffer named after it.
func ReadFile(path string) (Buffer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Buffer{}, err
	}
	return Buffer{Name: path, Text: string(b)}, nil
}

// ReadAll drains r into a Buffer; used for piped stdin.
func ReadAll(name string, r io.Reader) (Buffer, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Buffer{}, err
	}
	return Buffer{Name: name, Text: string(b)}, nil
}

// Resolve finds name under the load directories, trying each in order.
// Absolute paths bypass the search; with no directories the name is read
// as-is relative to the working directory. The error from the first
// directory tried is reported when nothing matches.
func Resolve(name string, dirs []string) (Buffer, error) {
	if filepath.IsAbs(name) || len(dirs) == 0 {
		return ReadFile(name)
	}
	var firstErr error
	for _, dir := range dirs {
		buf, err := ReadFile(filepath.Join(dir, name))
		if err == nil {
			return buf, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return Buffer{}, firstErr
}
