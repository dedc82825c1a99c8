package shared

const (
	OwnerReadWrite     = 0o600
	OwnerReadWriteExec = 0o700
)

func IsPowerOfTwo(x uint64) bool {
	return x != 0 && x&(x-1) == 0
}
