// Package verifying holds the defensive checks that run after a rotation:
// the rotation preserves length and is invertible by construction, so a
// violation found here means the run was corrupted somewhere between reading
// and writing.
package verifying

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spacemeshos/sha256-simd"

	"github.com/kurtisc/bit-rotate/rotation"
	"github.com/kurtisc/bit-rotate/shared"
)

// Sizes checks that the output file is exactly as large as the input file.
func Sizes(inputPath, outputPath string) error {
	in, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}
	out, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("failed to stat output file: %w", err)
	}

	if in.Size() != out.Size() {
		return fmt.Errorf("%w; input: %d bytes, output: %d bytes",
			shared.ErrSizeMismatch, in.Size(), out.Size())
	}

	return nil
}

// RoundTrip rotates the output file back in the opposite direction, streaming
// straight into a digest, and compares it against the input file's digest.
// d is the direction the output was produced with.
func RoundTrip(inputPath, outputPath string, d rotation.Direction) error {
	want, err := fileDigest(inputPath)
	if err != nil {
		return err
	}

	out, err := os.Open(outputPath)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer out.Close()

	h := sha256.New()
	if _, err := rotation.Rotate(h, out, d.Opposite()); err != nil {
		return fmt.Errorf("failed to rotate output back: %w", err)
	}

	if !bytes.Equal(h.Sum(nil), want) {
		return shared.ErrVerifyFailed
	}

	return nil
}

func fileDigest(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %v: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return nil, fmt.Errorf("failed to hash %v: %w", path, err)
	}

	return h.Sum(nil), nil
}
