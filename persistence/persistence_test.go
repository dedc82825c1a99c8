package persistence

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBufSize = 1 << 9

func TestFileWriterAndReader(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "data.bin")

	writer, err := NewFileWriter(name, testBufSize)
	req.NoError(err)
	_, err = writer.Write([]byte{0xCA, 0xFE})
	req.NoError(err)
	err = writer.WriteByte(0x01)
	req.NoError(err)
	err = writer.Close()
	req.NoError(err)

	reader, err := NewFileReader(name, testBufSize)
	req.NoError(err)
	defer reader.Close()

	size, err := reader.Size()
	req.NoError(err)
	req.Equal(int64(3), size)

	data := make([]byte, 3)
	_, err = io.ReadFull(reader, data)
	req.NoError(err)
	req.Equal([]byte{0xCA, 0xFE, 0x01}, data)

	_, err = reader.ReadByte()
	req.Equal(io.EOF, err)
}

func TestFileReader_TrailingByte(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "data.bin")
	req.NoError(os.WriteFile(name, []byte{0x10, 0x20, 0x31}, 0o600))

	reader, err := NewFileReader(name, testBufSize)
	req.NoError(err)
	defer reader.Close()

	trailing, err := reader.TrailingByte()
	req.NoError(err)
	req.Equal(byte(0x31), trailing)

	// Peeking at the far end does not disturb the stream position.
	b, err := reader.ReadByte()
	req.NoError(err)
	req.Equal(byte(0x10), b)
}

func TestFileReader_TrailingByteEmpty(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "empty.bin")
	req.NoError(os.WriteFile(name, nil, 0o600))

	reader, err := NewFileReader(name, testBufSize)
	req.NoError(err)
	defer reader.Close()

	_, err = reader.TrailingByte()
	req.Equal(io.EOF, err)
}

func TestFileReader_Missing(t *testing.T) {
	req := require.New(t)

	_, err := NewFileReader(filepath.Join(t.TempDir(), "nope.bin"), testBufSize)
	req.Error(err)
}

func TestFileWriter_AtomicPromote(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "out.bin")

	writer, err := NewFileWriter(name, testBufSize)
	req.NoError(err)
	err = writer.WriteByte(0xAB)
	req.NoError(err)

	// Before Close the destination does not exist yet.
	_, err = os.Stat(name)
	req.True(os.IsNotExist(err))
	_, err = os.Stat(name + ".tmp")
	req.NoError(err)

	req.NoError(writer.Close())

	data, err := os.ReadFile(name)
	req.NoError(err)
	req.Equal([]byte{0xAB}, data)
	_, err = os.Stat(name + ".tmp")
	req.True(os.IsNotExist(err))
}

func TestFileWriter_Abort(t *testing.T) {
	req := require.New(t)
	name := filepath.Join(t.TempDir(), "out.bin")

	writer, err := NewFileWriter(name, testBufSize)
	req.NoError(err)
	err = writer.WriteByte(0xAB)
	req.NoError(err)
	req.NoError(writer.Abort())

	_, err = os.Stat(name)
	req.True(os.IsNotExist(err))
	_, err = os.Stat(name + ".tmp")
	req.True(os.IsNotExist(err))
}
