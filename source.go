package stream

import (
	"io"
	"os"

	"github.com/gostream-io/stream/mmap"
)

// source is the internal dispatch surface behind a Stream. Exactly one
// concrete variant backs a handle at a time.
type source interface {
	read(p []byte) int
	write(p []byte) int
	seek(offset int64, whence int) (int64, error)
	tell() int64
	flush() error
	close() error
	size() int64
	bytes() []byte
}

// clampSeek computes the target position for a cursor-backed source.
// Negative targets saturate at 0; targets past the end fail without moving
// the cursor.
func clampSeek(pos, length, offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = pos + offset
	case io.SeekEnd:
		target = length + offset
	default:
		return pos, ErrInvalidSeek
	}
	if target < 0 {
		target = 0
	}
	if target > length {
		return pos, ErrInvalidSeek
	}
	return target, nil
}

// memorySource is a fixed-size byte buffer with a cursor. The buffer never
// grows; reads and writes clamp to the bytes remaining from the cursor.
type memorySource struct {
	buf []byte
	pos int64
}

func (m *memorySource) read(p []byte) int {
	if m.pos >= int64(len(m.buf)) {
		return 0
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n
}

func (m *memorySource) write(p []byte) int {
	if m.pos >= int64(len(m.buf)) {
		return 0
	}
	n := copy(m.buf[m.pos:], p)
	m.pos += int64(n)
	return n
}

func (m *memorySource) seek(offset int64, whence int) (int64, error) {
	target, err := clampSeek(m.pos, int64(len(m.buf)), offset, whence)
	if err != nil {
		return m.pos, err
	}
	m.pos = target
	return m.pos, nil
}

func (m *memorySource) tell() int64 {
	return m.pos
}

func (m *memorySource) flush() error {
	return nil
}

func (m *memorySource) close() error {
	// The buffer belongs to the caller or the garbage collector.
	m.buf, m.pos = nil, 0
	return nil
}

func (m *memorySource) size() int64 {
	return int64(len(m.buf))
}

func (m *memorySource) bytes() []byte {
	if m.pos >= int64(len(m.buf)) {
		return nil
	}
	return m.buf[m.pos:]
}

// fileSource is a pass-through to the platform's file I/O. Position and
// bounds checks are left entirely to the operating system.
type fileSource struct {
	f     *os.File
	owned bool
}

func (f *fileSource) read(p []byte) int {
	n, _ := f.f.Read(p)
	if n < 0 {
		return 0
	}
	return n
}

func (f *fileSource) write(p []byte) int {
	n, _ := f.f.Write(p)
	if n < 0 {
		return 0
	}
	return n
}

func (f *fileSource) seek(offset int64, whence int) (int64, error) {
	pos, err := f.f.Seek(offset, whence)
	if err != nil {
		return -1, &Error{Op: "seek", Err: err}
	}
	return pos, nil
}

func (f *fileSource) tell() int64 {
	pos, err := f.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

func (f *fileSource) flush() error {
	return f.f.Sync()
}

func (f *fileSource) close() error {
	if !f.owned {
		return nil
	}
	return f.f.Close()
}

func (f *fileSource) size() int64 {
	fi, err := f.f.Stat()
	if err != nil {
		return -1
	}
	return fi.Size()
}

func (f *fileSource) bytes() []byte {
	return nil
}

// mappedSource reads from a read-only memory-mapped file through the same
// cursor arithmetic as memorySource. Writes are rejected by construction
// (mapped streams never carry the Write flag).
type mappedSource struct {
	m   *mmap.Map
	pos int64
}

func (m *mappedSource) read(p []byte) int {
	d := m.m.Data()
	if m.pos >= int64(len(d)) {
		return 0
	}
	n := copy(p, d[m.pos:])
	m.pos += int64(n)
	return n
}

func (m *mappedSource) write(p []byte) int {
	return 0
}

func (m *mappedSource) seek(offset int64, whence int) (int64, error) {
	target, err := clampSeek(m.pos, m.m.Size(), offset, whence)
	if err != nil {
		return m.pos, err
	}
	m.pos = target
	return m.pos, nil
}

func (m *mappedSource) tell() int64 {
	return m.pos
}

func (m *mappedSource) flush() error {
	return nil
}

func (m *mappedSource) close() error {
	return m.m.Close()
}

func (m *mappedSource) size() int64 {
	return m.m.Size()
}

func (m *mappedSource) bytes() []byte {
	d := m.m.Data()
	if m.pos >= int64(len(d)) {
		return nil
	}
	return d[m.pos:]
}
