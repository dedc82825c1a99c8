package persistence

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kurtisc/bit-rotate/shared"
)

type FileReader struct {
	file *os.File
	buf  *bufio.Reader
}

// A compile time check to ensure that FileReader fully implements the Reader interface.
var _ Reader = (*FileReader)(nil)

func NewFileReader(name string, bufSize uint) (*FileReader, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	return &FileReader{
		file: file,
		buf:  bufio.NewReaderSize(file, int(bufSize)),
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.buf.Read(p)
}

func (r *FileReader) ReadByte() (byte, error) {
	return r.buf.ReadByte()
}

// Size returns the file size in bytes.
func (r *FileReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// TrailingByte returns the final byte of the file without disturbing the
// buffered stream position. Returns io.EOF for an empty file.
func (r *FileReader) TrailingByte() (byte, error) {
	size, err := r.Size()
	if err != nil {
		return 0, err
	}
	if size == 0 {
		return 0, io.EOF
	}

	var b [1]byte
	if _, err := r.file.ReadAt(b[:], size-1); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *FileReader) Close() error {
	r.buf = nil
	return r.file.Close()
}
