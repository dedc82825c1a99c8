package shared

import "errors"

var (
	ErrSamePath     = errors.New("reading and writing to the same file is not supported")
	ErrSizeMismatch = errors.New("output file size does not match input file size")
	ErrVerifyFailed = errors.New("round-trip verification failed")
)
