package shared

import (
	"fmt"

	"code.cloudfoundry.org/bytefmt"
	"github.com/ricochet2200/go-disk-usage/du"
)

// AvailableSpace returns the free space, in bytes, of the volume holding path.
func AvailableSpace(path string) uint64 {
	usage := du.NewDiskUsage(path)
	return usage.Available()
}

// CheckAvailableSpace verifies that the volume holding path has at least
// required bytes free.
func CheckAvailableSpace(path string, required uint64) error {
	available := AvailableSpace(path)
	if required > available {
		return fmt.Errorf("not enough disk space. required: %v, available: %v",
			bytefmt.ByteSize(required), bytefmt.ByteSize(available))
	}

	return nil
}
