// Package billy opens streams over files of any billy filesystem, letting
// in-memory and networked filesystems participate in the typed I/O surface
// through the stream Source extension point.
package billy

import (
	"io"
	"os"

	gobilly "github.com/go-git/go-billy/v5"

	"github.com/gostream-io/stream"
)

// fileSource adapts a billy.File to the stream.Source contract.
type fileSource struct {
	f gobilly.File
}

func (s *fileSource) Read(p []byte) int {
	n, _ := s.f.Read(p)
	if n < 0 {
		return 0
	}
	return n
}

func (s *fileSource) Write(p []byte) int {
	n, _ := s.f.Write(p)
	if n < 0 {
		return 0
	}
	return n
}

func (s *fileSource) Seek(offset int64, whence int) (int64, error) {
	return s.f.Seek(offset, whence)
}

func (s *fileSource) Tell() int64 {
	pos, err := s.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

func (s *fileSource) Flush() error {
	return nil
}

func (s *fileSource) Close() error {
	return s.f.Close()
}

// Open opens the file at path on fs with a mode derived from flags and wraps
// it in a stream. Write access opens with create and truncate semantics,
// matching stream.OpenFile. The stream owns the billy file and closes it on
// teardown.
func Open(fs gobilly.Filesystem, path string, flags stream.Flag) (*stream.Stream, error) {
	var mode int
	switch flags & stream.ReadWrite {
	case stream.Read:
		mode = os.O_RDONLY
	case stream.Write:
		mode = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case stream.ReadWrite:
		mode = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return nil, stream.ErrNoAccess
	}
	f, err := fs.OpenFile(path, mode, 0644)
	if err != nil {
		return nil, err
	}
	h, err := stream.New(&fileSource{f: f}, flags)
	if err != nil {
		f.Close()
		return nil, err
	}
	return h, nil
}
