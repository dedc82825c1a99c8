package persistence

import (
	"bufio"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/kurtisc/bit-rotate/shared"
)

// FileWriter buffers writes into a temporary sibling of the destination
// file. Close promotes the temporary file onto the destination atomically,
// so an aborted run never leaves a partial output behind.
type FileWriter struct {
	file *os.File
	buf  *bufio.Writer
	name string
	tmp  string
}

// A compile time check to ensure that FileWriter fully implements the Writer interface.
var _ Writer = (*FileWriter)(nil)

func NewFileWriter(name string, bufSize uint) (*FileWriter, error) {
	tmp := name + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return &FileWriter{
		file: f,
		buf:  bufio.NewWriterSize(f, int(bufSize)),
		name: name,
		tmp:  tmp,
	}, nil
}

func (w *FileWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *FileWriter) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// Size returns the number of bytes written to disk so far, not counting
// bytes still sitting in the buffer.
func (w *FileWriter) Size() (int64, error) {
	info, err := w.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (w *FileWriter) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush disk writer: %w", err)
	}

	return nil
}

// Close flushes pending bytes and moves the temporary file onto the
// destination.
func (w *FileWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		return err
	}
	w.buf = nil

	if err := w.file.Close(); err != nil {
		return err
	}
	w.file = nil

	return atomic.ReplaceFile(w.tmp, w.name)
}

// Abort discards the temporary file without touching the destination.
func (w *FileWriter) Abort() error {
	if w.file != nil {
		w.buf = nil
		_ = w.file.Close()
		w.file = nil
	}
	return os.Remove(w.tmp)
}
