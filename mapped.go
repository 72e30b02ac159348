package hamming

import (
	"fmt"
	"os"
	"sync/atomic"

	hammingerrors "github.com/SingingTree/hamming/errors"
	"github.com/edsrzf/mmap-go"
)

// Mapped is a read-only memory-mapped file.
//
// Thread Safety:
// - Bytes and Len are safe for concurrent use
// - Close is NOT safe to call concurrently with readers of the mapped bytes
// - After Close returns, slices obtained from Bytes must not be used
type Mapped struct {
	path string

	// nil for empty files, which cannot be mapped
	mmap mmap.MMap
	data []byte

	closed atomic.Bool
}

// OpenMapped opens path and memory-maps its contents read-only.
// The file descriptor is closed before OpenMapped returns; the mapping
// stays valid until Close.
func OpenMapped(path string) (*Mapped, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !stat.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", hammingerrors.ErrNotRegularFile, path)
	}

	m := &Mapped{path: path, data: []byte{}}
	if stat.Size() == 0 {
		return m, nil
	}

	mm, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	m.mmap = mm
	m.data = []byte(mm)
	madviseSequential(m.data)
	return m, nil
}

// Path returns the path the file was opened from.
func (m *Mapped) Path() string {
	return m.path
}

// Len returns the mapped size in bytes.
func (m *Mapped) Len() int {
	return len(m.data)
}

// Bytes returns the mapped contents. The slice is read-only.
func (m *Mapped) Bytes() ([]byte, error) {
	if m.closed.Load() {
		return nil, hammingerrors.ErrClosed
	}
	return m.data, nil
}

// Close unmaps the file. Calling Close more than once is a no-op.
func (m *Mapped) Close() error {
	if m.closed.Swap(true) {
		return nil
	}
	if m.mmap != nil {
		if err := m.mmap.Unmap(); err != nil {
			return fmt.Errorf("unmap %s: %w", m.path, err)
		}
	}
	return nil
}
