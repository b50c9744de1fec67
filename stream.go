package stream

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/gostream-io/stream/mmap"
)

// Flag controls the access capabilities of a Stream. Capabilities are fixed
// at creation and never change for the lifetime of the handle.
type Flag uint

const (
	// Read requests read access.
	Read Flag = 1 << iota

	// Write requests write access.
	Write

	// ReadWrite requests both read and write access.
	ReadWrite = Read | Write
)

// Stream is a handle over one backing source of bytes. All operations
// dispatch to the source behind it, so typed and text I/O behave identically
// for every source kind.
//
// A Stream is single-owner and not safe for concurrent use.
type Stream struct {
	src      source
	order    binary.ByteOrder
	canRead  bool
	canWrite bool
}

// New creates a Stream over a caller-supplied Source. The source's semantics
// are forwarded verbatim. If src also implements io.Closer, Close is invoked
// exactly once when the stream is closed.
func New(src Source, flags Flag) (*Stream, error) {
	if flags&ReadWrite == 0 {
		return nil, ErrNoAccess
	}
	if src == nil {
		return nil, ErrNilSource
	}
	return newStream(&customSource{src: src}, flags), nil
}

// NewFile creates a Stream over an already-open file. When owned is true,
// closing the stream closes the file; otherwise the caller keeps full
// responsibility for its lifetime.
func NewFile(f *os.File, flags Flag, owned bool) (*Stream, error) {
	if flags&ReadWrite == 0 {
		return nil, ErrNoAccess
	}
	if f == nil {
		return nil, ErrNilSource
	}
	return newStream(&fileSource{f: f, owned: owned}, flags), nil
}

// OpenFile opens the file at path with a mode derived from flags and creates
// a Stream owning the resulting handle. Write access opens with create and
// truncate semantics.
func OpenFile(path string, flags Flag) (*Stream, error) {
	var mode int
	switch flags & ReadWrite {
	case Read:
		mode = os.O_RDONLY
	case Write:
		mode = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case ReadWrite:
		mode = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return nil, ErrNoAccess
	}
	f, err := os.OpenFile(path, mode, 0644)
	if err != nil {
		return nil, &Error{Op: "open " + path, Err: err}
	}
	return newStream(&fileSource{f: f, owned: true}, flags), nil
}

// NewMemory creates a Stream over the caller's buffer. The slice is aliased,
// not copied: writes through the stream are visible to the caller and the
// buffer is never released by the stream. The stream size is fixed at
// len(buf); writes past the end are clamped.
func NewMemory(buf []byte, flags Flag) (*Stream, error) {
	if flags&ReadWrite == 0 {
		return nil, ErrNoAccess
	}
	if len(buf) == 0 {
		return nil, ErrInvalidSize
	}
	return newStream(&memorySource{buf: buf}, flags), nil
}

// NewMemorySize creates a Stream over a freshly allocated zeroed buffer of
// size bytes.
func NewMemorySize(size int, flags Flag) (*Stream, error) {
	if flags&ReadWrite == 0 {
		return nil, ErrNoAccess
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return newStream(&memorySource{buf: make([]byte, size)}, flags), nil
}

// OpenMapped maps the whole file at path read-only into memory and creates a
// Stream over the mapping. Mapped streams are always read-only and always own
// the mapping. Zero-length files cannot be mapped.
func OpenMapped(path string) (*Stream, error) {
	m, err := mmap.MapFile(path)
	if err != nil {
		return nil, &Error{Op: "map " + path, Err: err}
	}
	// Whole-file sequential reads are the expected access pattern.
	m.AdviseSequential()
	return newStream(&mappedSource{m: m}, Read), nil
}

func newStream(src source, flags Flag) *Stream {
	return &Stream{
		src:      src,
		order:    binary.LittleEndian,
		canRead:  flags&Read != 0,
		canWrite: flags&Write != 0,
	}
}

// Read transfers up to len(p) bytes from the stream into p and returns the
// number of bytes actually transferred. It returns 0 when the handle is nil
// or closed, p is empty, or the stream is not readable.
func (s *Stream) Read(p []byte) int {
	if s == nil || s.src == nil || !s.canRead || len(p) == 0 {
		return 0
	}
	return s.src.read(p)
}

// Write transfers up to len(p) bytes from p into the stream and returns the
// number of bytes actually transferred. It returns 0 when the handle is nil
// or closed, p is empty, or the stream is not writable.
func (s *Stream) Write(p []byte) int {
	if s == nil || s.src == nil || !s.canWrite || len(p) == 0 {
		return 0
	}
	return s.src.write(p)
}

// Seek moves the stream position. Whence is one of io.SeekStart,
// io.SeekCurrent or io.SeekEnd. For memory and mapped streams a target
// before the start saturates at 0 and a target past the end fails with
// ErrInvalidSeek, leaving the position unchanged. The new position is
// returned on success.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s == nil || s.src == nil {
		return -1, ErrClosed
	}
	return s.src.seek(offset, whence)
}

// Tell returns the current stream position, or -1 when the handle is nil or
// closed, or the source exposes no meaningful position.
func (s *Stream) Tell() int64 {
	if s == nil || s.src == nil {
		return -1
	}
	return s.src.tell()
}

// Reset rewinds the stream to the start.
func (s *Stream) Reset() {
	if s == nil || s.src == nil {
		return
	}
	s.src.seek(0, io.SeekStart)
}

// Flush forces any buffered writes down to the backing resource. It is a
// no-op for memory and mapped streams.
func (s *Stream) Flush() error {
	if s == nil || s.src == nil {
		return nil
	}
	return s.src.flush()
}

// Close releases the resources owned by the stream. It is idempotent and
// safe on a nil handle. Borrowed resources (unowned files, caller buffers)
// are left untouched.
func (s *Stream) Close() error {
	if s == nil || s.src == nil {
		return nil
	}
	err := s.src.close()
	s.src = nil
	return err
}

// CanRead reports whether the stream was created with read access.
func (s *Stream) CanRead() bool {
	return s != nil && s.src != nil && s.canRead
}

// CanWrite reports whether the stream was created with write access.
func (s *Stream) CanWrite() bool {
	return s != nil && s.src != nil && s.canWrite
}

// Size returns the total size of the backing store in bytes, or -1 when the
// size is unknown (custom sources).
func (s *Stream) Size() int64 {
	if s == nil || s.src == nil {
		return -1
	}
	return s.src.size()
}

// Remaining returns the number of bytes between the current position and the
// end of the stream, or -1 when either is unknown.
func (s *Stream) Remaining() int64 {
	if s == nil || s.src == nil {
		return -1
	}
	n, pos := s.src.size(), s.src.tell()
	if n < 0 || pos < 0 || pos > n {
		return -1
	}
	return n - pos
}

// Bytes returns a zero-copy view of the unread remainder for memory and
// mapped streams, and nil for every other kind. The slice is only valid
// while the stream is open and must not be written through for read-only
// streams.
func (s *Stream) Bytes() []byte {
	if s == nil || s.src == nil {
		return nil
	}
	return s.src.bytes()
}

// ByteOrder returns the byte order used by typed reads and writes.
func (s *Stream) ByteOrder() binary.ByteOrder {
	if s == nil || s.order == nil {
		return binary.LittleEndian
	}
	return s.order
}

// SetByteOrder selects the byte order for all typed reads and writes issued
// afterwards. Streams default to little-endian.
func (s *Stream) SetByteOrder(order binary.ByteOrder) {
	if s == nil || order == nil {
		return
	}
	s.order = order
}
