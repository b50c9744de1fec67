package stream

import "io"

// Source is the extension point that lets arbitrary transports (sockets,
// compressed pipes, ring buffers) participate in the typed I/O surface.
//
// Read and Write report only the number of bytes transferred; the engine
// does not second-guess the count. Seek follows the io.Seeker convention.
// Tell returns the current logical position, or -1 when the transport has no
// meaningful position. Flush may be a no-op.
//
// If the implementing value also satisfies io.Closer, its Close method is
// invoked exactly once when the owning stream is closed.
type Source interface {
	Read(p []byte) int
	Write(p []byte) int
	Seek(offset int64, whence int) (int64, error)
	Tell() int64
	Flush() error
}

// customSource forwards every operation verbatim to the caller's Source.
type customSource struct {
	src Source
}

func (c *customSource) read(p []byte) int {
	return c.src.Read(p)
}

func (c *customSource) write(p []byte) int {
	return c.src.Write(p)
}

func (c *customSource) seek(offset int64, whence int) (int64, error) {
	return c.src.Seek(offset, whence)
}

func (c *customSource) tell() int64 {
	return c.src.Tell()
}

func (c *customSource) flush() error {
	return c.src.Flush()
}

func (c *customSource) close() error {
	if cl, ok := c.src.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func (c *customSource) size() int64 {
	return -1
}

func (c *customSource) bytes() []byte {
	return nil
}
