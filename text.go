package stream

// readUntil consumes bytes one at a time until term is seen or max-1 bytes
// have been collected. The terminator, when encountered, is consumed but not
// returned.
func (s *Stream) readUntil(term byte, max int) string {
	if s == nil || s.src == nil || max <= 0 {
		return ""
	}
	var (
		b   [1]byte
		out []byte
	)
	for len(out) < max-1 {
		if s.Read(b[:]) != 1 {
			break
		}
		if b[0] == term {
			break
		}
		out = append(out, b[0])
	}
	return string(out)
}

// ReadString reads a NUL-terminated string of at most max-1 bytes. The NUL
// terminator is consumed but not included in the result. A string cut short
// by max is returned without consuming its terminator.
func (s *Stream) ReadString(max int) string {
	return s.readUntil(0, max)
}

// WriteString writes the bytes of v followed by a single NUL terminator and
// returns the number of bytes actually written, terminator included.
func (s *Stream) WriteString(v string) int {
	if s == nil || s.src == nil {
		return 0
	}
	n := s.Write([]byte(v))
	if n < len(v) {
		return n
	}
	return n + s.Write([]byte{0})
}

// ReadLine reads bytes up to and including the next line feed, returning at
// most max-1 bytes without the line feed. Carriage returns are not stripped.
func (s *Stream) ReadLine(max int) string {
	return s.readUntil('\n', max)
}

// WriteLine writes the bytes of v followed by exactly one line feed,
// regardless of whether v already ends in one, and returns the number of
// bytes actually written.
func (s *Stream) WriteLine(v string) int {
	if s == nil || s.src == nil {
		return 0
	}
	n := s.Write([]byte(v))
	if n < len(v) {
		return n
	}
	return n + s.Write([]byte{'\n'})
}
