//go:build unix

package dawg

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile memory-maps f read-only. If mmap is refused (e.g. a zero-length
// file, or a filesystem that doesn't support it) it falls back to reading
// the whole file into memory.
func mmapFile(f *os.File, size int64) (data []byte, mmapped bool, err error) {
	data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		buf, rerr := readAllFallback(f, size)
		if rerr != nil {
			return nil, false, rerr
		}
		return buf, false, nil
	}
	return data, true, nil
}

func munmapData(data []byte) error {
	return unix.Munmap(data)
}
