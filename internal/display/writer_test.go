package display

import "testing"

func TestWriterEmptyWrite(t *testing.T) {
	// A Writer bound to an invalid fd still accepts empty writes: nothing
	// to flush means no syscall is attempted.
	w := &Writer{fd: -1}
	if err := w.Write(nil); err != nil {
		t.Errorf("Write(nil) = %v, want nil", err)
	}
	if err := w.Write([]byte{}); err != nil {
		t.Errorf("Write(empty) = %v, want nil", err)
	}
}
