// Package storagecheck verifies free space in the data directory at startup.
package storagecheck

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// FreeBytes returns the bytes available to unprivileged users on the
// filesystem containing path.
func FreeBytes(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, fmt.Errorf("failed to stat filesystem for %s: %w", path, err)
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

// Check reports an error when the filesystem containing path has less
// than minFree bytes available.
func Check(path string, minFree uint64) error {
	free, err := FreeBytes(path)
	if err != nil {
		return err
	}
	if free < minFree {
		return fmt.Errorf("insufficient disk space in %s: %d bytes free, need %d", path, free, minFree)
	}
	return nil
}
