//go:build !unix

package dawg

import "os"

// mmapFile has no mmap support off unix; it always falls back to reading
// the whole file into memory.
func mmapFile(f *os.File, size int64) (data []byte, mmapped bool, err error) {
	buf, err := readAllFallback(f, size)
	if err != nil {
		return nil, false, err
	}
	return buf, false, nil
}

func munmapData(data []byte) error {
	return nil
}
