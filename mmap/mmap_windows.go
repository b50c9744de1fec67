//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// New creates a read-only memory mapping over length bytes of the given file
// handle. The handle stays the caller's to close.
func New(fd int, offset int64, length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	handle := windows.Handle(fd)

	mapping, err := windows.CreateFileMapping(handle, nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, &Error{Op: "CreateFileMapping", Err: err}
	}

	offsetHigh := uint32(uint64(offset) >> 32)
	offsetLow := uint32(offset)

	addr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_READ, offsetHigh, offsetLow, uintptr(length))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, &Error{Op: "MapViewOfFile", Err: err}
	}

	return &Map{
		data:    unsafe.Slice((*byte)(unsafe.Pointer(addr)), length),
		fd:      fd,
		size:    int64(length),
		handle:  uintptr(handle),
		mapping: uintptr(mapping),
	}, nil
}

// MapFile opens the file at path for shared reading and maps its whole
// contents. Zero-length files cannot be mapped. The returned Map owns the
// file and mapping handles and releases them on Close.
func MapFile(path string) (*Map, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &Error{Op: "open " + path, Err: err}
	}

	handle, err := windows.CreateFile(p, windows.GENERIC_READ,
		windows.FILE_SHARE_READ, nil, windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, &Error{Op: "open " + path, Err: err}
	}

	var size int64
	if err = windows.GetFileSizeEx(handle, &size); err != nil {
		windows.CloseHandle(handle)
		return nil, &Error{Op: "size " + path, Err: err}
	}

	if size == 0 {
		windows.CloseHandle(handle)
		return nil, ErrEmptyFile
	}

	m, err := New(int(handle), 0, int(size))
	if err != nil {
		windows.CloseHandle(handle)
		return nil, err
	}

	m.owned = true
	return m, nil
}

// Close releases the view, the mapping handle and, for mappings created by
// MapFile, the file handle behind it. It is idempotent.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&m.data[0]))
	m.data = nil
	m.size = 0

	if err := windows.UnmapViewOfFile(addr); err != nil {
		return &Error{Op: "UnmapViewOfFile", Err: err}
	}

	if m.mapping != 0 {
		windows.CloseHandle(windows.Handle(m.mapping))
		m.mapping = 0
	}
	if m.owned && m.handle != 0 {
		windows.CloseHandle(windows.Handle(m.handle))
		m.handle = 0
	}
	return nil
}

// Advise provides hints about memory access patterns.
// Windows doesn't have madvise, so these are no-ops.
func (m *Map) Advise(advice int) error {
	if m.data == nil {
		return ErrNotMapped
	}
	return nil
}

// AdviseSequential hints that pages will be accessed sequentially.
func (m *Map) AdviseSequential() error {
	return m.Advise(0)
}

// AdviseRandom hints that pages will be accessed randomly.
func (m *Map) AdviseRandom() error {
	return m.Advise(0)
}

// AdviseWillNeed hints that pages will be needed soon.
func (m *Map) AdviseWillNeed() error {
	return m.Advise(0)
}
