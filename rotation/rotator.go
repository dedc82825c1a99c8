package rotation

import (
	"bufio"
	"io"
)

// RotateBytes returns a new slice containing b rotated by one bit in
// direction d. For every output byte, 7 bits come from the matching input
// byte and the remaining bit from its neighbor; at the slice boundary the
// neighbor wraps around to the opposite end. A single byte degenerates to an
// in-byte rotate, and an empty slice is returned unchanged.
func RotateBytes(b []byte, d Direction) []byte {
	n := len(b)
	out := make([]byte, n)
	if n == 0 {
		return out
	}

	if d == Left {
		for i := 0; i < n; i++ {
			out[i] = b[i]<<1 | b[(i+1)%n]>>7
		}
		return out
	}

	for i := 0; i < n; i++ {
		out[i] = b[i]>>1 | (b[(i+n-1)%n]&0x01)<<7
	}
	return out
}

// RotateLeft streams src into dst rotated one bit toward the start. It keeps
// a single byte of lookahead: each output byte takes its low bit from the
// high bit of the next input byte, and the final output byte takes the high
// bit of the very first byte, which wrapped around. Returns the number of
// bytes written.
func RotateLeft(dst io.Writer, src io.Reader) (int64, error) {
	br := byteReader(src)
	bw := byteWriter(dst)

	cur, err := br.ReadByte()
	if err == io.EOF {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	leading := cur >> 7

	var written int64
	for {
		next, err := br.ReadByte()
		if err == io.EOF {
			// Last byte; the saved leading bit wraps around.
			if err := bw.WriteByte(cur<<1 | leading); err != nil {
				return written, err
			}
			written++
			break
		}
		if err != nil {
			return written, err
		}

		if err := bw.WriteByte(cur<<1 | next>>7); err != nil {
			return written, err
		}
		written++
		cur = next
	}

	return written, flush(bw)
}

// RotateRight streams src into dst rotated one bit toward the end. trailing
// is the least-significant bit of the stream's final byte; it becomes the
// high bit of the first output byte, and from there each input byte's low
// bit is carried into the high position of the following output byte.
// Returns the number of bytes written.
func RotateRight(dst io.Writer, src io.Reader, trailing Bit) (int64, error) {
	br := byteReader(src)
	bw := byteWriter(dst)

	var carry byte
	if trailing {
		carry = 1
	}

	var written int64
	for {
		cur, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return written, err
		}

		if err := bw.WriteByte(cur>>1 | carry<<7); err != nil {
			return written, err
		}
		written++
		carry = cur & 0x01
	}

	return written, flush(bw)
}

// Rotate streams src into dst rotated one bit in direction d. Rotating right
// requires the trailing bit before the first byte is written, so src must be
// seekable; the far end of the stream is inspected once and the position
// restored before the forward pass.
func Rotate(dst io.Writer, src io.ReadSeeker, d Direction) (int64, error) {
	if d == Left {
		return RotateLeft(dst, src)
	}

	trailing, err := TrailingBit(src)
	if err != nil {
		return 0, err
	}
	return RotateRight(dst, src, trailing)
}

// TrailingBit returns the least-significant bit of the final byte of src,
// restoring the stream position afterwards. An empty stream has no trailing
// bit and yields Zero.
func TrailingBit(src io.ReadSeeker) (Bit, error) {
	pos, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return Zero, err
	}
	end, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return Zero, err
	}
	if end == pos {
		return Zero, nil
	}

	if _, err := src.Seek(end-1, io.SeekStart); err != nil {
		return Zero, err
	}
	var last [1]byte
	if _, err := io.ReadFull(src, last[:]); err != nil {
		return Zero, err
	}
	if _, err := src.Seek(pos, io.SeekStart); err != nil {
		return Zero, err
	}

	return Bit(last[0]&0x01 == 1), nil
}

func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

func byteWriter(w io.Writer) io.ByteWriter {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw
	}
	return bufio.NewWriter(w)
}

func flush(w io.ByteWriter) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
