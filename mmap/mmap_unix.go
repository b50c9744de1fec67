//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// New creates a read-only memory mapping over length bytes of the given file
// descriptor. The offset must be page-aligned. The descriptor stays the
// caller's to close.
func New(fd int, offset int64, length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := unix.Mmap(fd, offset, length, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &Error{Op: "mmap", Err: err}
	}

	return &Map{
		data: data,
		fd:   fd,
		size: int64(length),
	}, nil
}

// MapFile opens the file at path for shared reading and maps its whole
// contents. Zero-length files cannot be mapped. The returned Map owns the
// descriptor and releases it on Close.
func MapFile(path string) (*Map, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &Error{Op: "open " + path, Err: err}
	}

	var st unix.Stat_t
	if err = unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return nil, &Error{Op: "stat " + path, Err: err}
	}

	if st.Size == 0 {
		unix.Close(fd)
		return nil, ErrEmptyFile
	}

	m, err := New(fd, 0, int(st.Size))
	if err != nil {
		unix.Close(fd)
		return nil, err
	}

	m.owned = true
	return m, nil
}

// Close releases the memory mapping and, for mappings created by MapFile,
// the file descriptor behind it. It is idempotent.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	err := unix.Munmap(m.data)
	m.data = nil
	m.size = 0
	if m.owned && m.fd >= 0 {
		unix.Close(m.fd)
		m.fd = -1
	}
	return err
}

// Advise provides hints to the kernel about memory access patterns.
func (m *Map) Advise(advice int) error {
	if m.data == nil {
		return ErrNotMapped
	}
	return unix.Madvise(m.data, advice)
}

// AdviseSequential hints that pages will be accessed sequentially.
func (m *Map) AdviseSequential() error {
	return m.Advise(unix.MADV_SEQUENTIAL)
}

// AdviseRandom hints that pages will be accessed randomly.
func (m *Map) AdviseRandom() error {
	return m.Advise(unix.MADV_RANDOM)
}

// AdviseWillNeed hints that pages will be needed soon.
func (m *Map) AdviseWillNeed() error {
	return m.Advise(unix.MADV_WILLNEED)
}
