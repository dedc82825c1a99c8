// Package persistence provides the buffered file access used when streaming
// a whole-file transform: a reader that can also peek at the far end of the
// file, and a writer that only promotes its output into place once the full
// stream has been flushed.
package persistence

import "io"

type Reader interface {
	io.Reader
	io.ByteReader
	Size() (int64, error)
	Close() error
}

type Writer interface {
	io.Writer
	io.ByteWriter
	Flush() error
	Close() error
}
