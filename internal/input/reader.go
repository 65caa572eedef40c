// Package input provides the sources a scan reads from. Each worker owns
// its source exclusively; sources are opened per scan and closed by the
// scan that opened them.
package input

import (
	"io"
	"os"
)

// Reader opens a named input for one scan.
type Reader interface {
	Open(path string) (io.ReadCloser, error)
}

// FileReader opens regular files.
type FileReader struct{}

func (FileReader) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Stdin returns the process standard input as a scan source. A stream has
// no path identity, so results from it are never tagged.
func Stdin() io.Reader {
	return os.Stdin
}
