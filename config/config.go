package config

import (
	"fmt"

	"github.com/kurtisc/bit-rotate/shared"
)

const (
	MinBufferSize = 1 << 9
	MaxBufferSize = 1 << 26

	DefaultBufferSize     = 1 << 16
	DefaultVerify         = false
	DefaultSkipSpaceCheck = false
)

type Config struct {
	// BufferSize is the size, in bytes, of the read and write buffers used
	// while streaming the file.
	BufferSize uint `mapstructure:"buffer-size"`

	// Verify enables the post-run round-trip check, in which the output is
	// rotated back and its digest compared against the input's.
	Verify bool `mapstructure:"verify"`

	// SkipSpaceCheck disables the destination free-space check that runs
	// before any output is written.
	SkipSpaceCheck bool `mapstructure:"skip-space-check"`
}

func DefaultConfig() *Config {
	return &Config{
		BufferSize:     DefaultBufferSize,
		Verify:         DefaultVerify,
		SkipSpaceCheck: DefaultSkipSpaceCheck,
	}
}

func (cfg *Config) Validate() error {
	if cfg.BufferSize < MinBufferSize {
		return fmt.Errorf("invalid `BufferSize`; expected: >= %d, given: %d", MinBufferSize, cfg.BufferSize)
	}

	if cfg.BufferSize > MaxBufferSize {
		return fmt.Errorf("invalid `BufferSize`; expected: <= %d, given: %d", MaxBufferSize, cfg.BufferSize)
	}

	if !shared.IsPowerOfTwo(uint64(cfg.BufferSize)) {
		return fmt.Errorf("invalid `BufferSize`; expected: a power of 2, given: %d", cfg.BufferSize)
	}

	return nil
}
