package display

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes rendered output to stdout, batching through writev.
type Writer struct {
	fd int
}

// NewWriter creates a Writer bound to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// Write writes data to stdout, retrying on short writes. Empty data is a
// no-op rather than a zero-length syscall.
func (w *Writer) Write(data []byte) error {
	if len(data) == 0 {
		return nil
	}

	for len(data) > 0 {
		n, err := unix.Writev(w.fd, [][]byte{data})
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
