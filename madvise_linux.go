//go:build linux

package hamming

import "golang.org/x/sys/unix"

// madviseSequential hints to the kernel that the mapped region will be read
// front to back, enabling aggressive read-ahead.
// Best-effort: errors are silently ignored.
func madviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
