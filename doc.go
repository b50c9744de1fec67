// Package stream provides a unified byte-stream abstraction for reading and
// writing typed binary data, regardless of whether the underlying bytes live
// in a file, an in-memory buffer, a read-only memory-mapped file or a
// caller-supplied custom source.
//
// Key features:
//   - One handle type over four backing-source kinds
//   - Fixed-width integer and float I/O in either byte order
//   - NUL-terminated string and line-oriented I/O
//   - Read-only memory mapping of whole files on Unix and Windows
//   - A five-method Source interface for plugging in arbitrary transports
//
// Basic usage:
//
//	s, err := stream.NewMemorySize(64, stream.ReadWrite)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//
//	s.WriteUint32(0xCAFEBABE)
//	s.WriteString("header")
//
//	s.Reset()
//	magic := s.ReadUint32()
//	name := s.ReadString(32)
//
// Every operation is synchronous and a handle is single-owner: concurrent use
// from multiple goroutines requires external synchronization.
package stream
