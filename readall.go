package dawg

import (
	"fmt"
	"io"
	"os"
)

// readAllFallback reads the whole file into a buffer, for platforms or
// filesystems where mmap isn't available.
func readAllFallback(f *os.File, size int64) ([]byte, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("dawg: seek: %w", err)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("dawg: read: %w", err)
	}
	return buf, nil
}
