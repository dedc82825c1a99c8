// Package rotate implements the rotate command, which rewrites a file with
// its whole bit sequence rotated by one position.
package rotate

import (
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kurtisc/bit-rotate/config"
	"github.com/kurtisc/bit-rotate/persistence"
	"github.com/kurtisc/bit-rotate/rotation"
	"github.com/kurtisc/bit-rotate/shared"
	"github.com/kurtisc/bit-rotate/verifying"
)

var Cmd = &cobra.Command{
	Use:   "rotate <left|right> <input-path> <output-path>",
	Short: "rotate a file by one bit",
	Long: `rotate treats a file as one contiguous bit sequence, where the most
significant bit of the first byte is the leading bit, and writes a same-size
file with the sequence rotated one bit left or right. The bit that falls off
the stream wraps around to the opposite end of the file.`,
	Args:          args,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, cmdArgs []string) error {
		logger, err := buildLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if printConfig {
			spew.Dump(cfg)
			return nil
		}

		dir, err := rotation.ParseDirection(cmdArgs[0])
		if err != nil {
			return err
		}

		return run(logger, cfg, dir, cmdArgs[1], cmdArgs[2])
	},
}

func args(cmd *cobra.Command, cmdArgs []string) error {
	if printConfig && len(cmdArgs) == 0 {
		return nil
	}
	return cobra.ExactArgs(3)(cmd, cmdArgs)
}

func run(logger *zap.Logger, cfg *config.Config, dir rotation.Direction, inputPath, outputPath string) error {
	if samePath(inputPath, outputPath) {
		return shared.ErrSamePath
	}

	reader, err := persistence.NewFileReader(inputPath, cfg.BufferSize)
	if err != nil {
		return err
	}
	defer reader.Close()

	size, err := reader.Size()
	if err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}

	if size == 0 {
		// Nothing to rotate; the contract is an empty output file.
		logger.Info("input is empty, writing empty output", zap.String("output", outputPath))
		return os.WriteFile(outputPath, nil, shared.OwnerReadWrite)
	}

	if !cfg.SkipSpaceCheck {
		if err := shared.CheckAvailableSpace(filepath.Dir(outputPath), uint64(size)); err != nil {
			return err
		}
	}

	writer, err := persistence.NewFileWriter(outputPath, cfg.BufferSize)
	if err != nil {
		return err
	}

	logger.Info("rotating",
		zap.Stringer("direction", dir),
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.String("size", bytefmt.ByteSize(uint64(size))),
	)

	var written int64
	switch dir {
	case rotation.Left:
		written, err = rotation.RotateLeft(writer, reader)
	case rotation.Right:
		var trailing byte
		trailing, err = reader.TrailingByte()
		if err == nil {
			written, err = rotation.RotateRight(writer, reader, rotation.Bit(trailing&0x01 == 1))
		}
	}
	if err != nil {
		_ = writer.Abort()
		return fmt.Errorf("rotation failed: %w", err)
	}

	if err := writer.Close(); err != nil {
		_ = writer.Abort()
		return fmt.Errorf("failed to finalize output file: %w", err)
	}

	if err := verifying.Sizes(inputPath, outputPath); err != nil {
		return err
	}

	if cfg.Verify {
		if err := verifying.RoundTrip(inputPath, outputPath, dir); err != nil {
			return err
		}
		logger.Info("round-trip verification passed")
	}

	logger.Info("done", zap.Int64("bytes", written))
	return nil
}

// samePath reports whether a and b name the same file. In-place rotation is
// not supported, so this is checked before any I/O happens.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
