package stream

import "math"

// readFixed reads width raw bytes and decodes them in the stream's byte
// order. A short read yields zero, the implicit end-of-stream value; the
// bytes that were available stay consumed.
func (s *Stream) readFixed(width int) uint64 {
	if s == nil || s.src == nil {
		return 0
	}
	var b [8]byte
	if s.Read(b[:width]) != width {
		return 0
	}
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(s.order.Uint16(b[:2]))
	case 4:
		return uint64(s.order.Uint32(b[:4]))
	default:
		return s.order.Uint64(b[:8])
	}
}

// writeFixed encodes v into width bytes in the stream's byte order and
// writes them. Writes on non-writable streams are silently dropped.
func (s *Stream) writeFixed(width int, v uint64) {
	if s == nil || s.src == nil {
		return
	}
	var b [8]byte
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		s.order.PutUint16(b[:2], uint16(v))
	case 4:
		s.order.PutUint32(b[:4], uint32(v))
	default:
		s.order.PutUint64(b[:8], v)
	}
	s.Write(b[:width])
}

// ReadUint8 reads one byte. Byte order does not apply to 8-bit values.
func (s *Stream) ReadUint8() uint8 {
	return uint8(s.readFixed(1))
}

// ReadUint16 reads a 16-bit unsigned value in the stream's byte order.
func (s *Stream) ReadUint16() uint16 {
	return uint16(s.readFixed(2))
}

// ReadUint32 reads a 32-bit unsigned value in the stream's byte order.
func (s *Stream) ReadUint32() uint32 {
	return uint32(s.readFixed(4))
}

// ReadUint64 reads a 64-bit unsigned value in the stream's byte order.
func (s *Stream) ReadUint64() uint64 {
	return s.readFixed(8)
}

// ReadInt8 reads one signed byte.
func (s *Stream) ReadInt8() int8 {
	return int8(s.readFixed(1))
}

// ReadInt16 reads a 16-bit signed value in the stream's byte order.
func (s *Stream) ReadInt16() int16 {
	return int16(s.readFixed(2))
}

// ReadInt32 reads a 32-bit signed value in the stream's byte order.
func (s *Stream) ReadInt32() int32 {
	return int32(s.readFixed(4))
}

// ReadInt64 reads a 64-bit signed value in the stream's byte order.
func (s *Stream) ReadInt64() int64 {
	return int64(s.readFixed(8))
}

// ReadFloat32 reads a 32-bit float in the stream's byte order.
func (s *Stream) ReadFloat32() float32 {
	return math.Float32frombits(uint32(s.readFixed(4)))
}

// ReadFloat64 reads a 64-bit float in the stream's byte order.
func (s *Stream) ReadFloat64() float64 {
	return math.Float64frombits(s.readFixed(8))
}

// ReadBool reads one byte and reports whether it equals 1.
func (s *Stream) ReadBool() bool {
	return s.readFixed(1) == 1
}

// WriteUint8 writes one byte.
func (s *Stream) WriteUint8(v uint8) {
	s.writeFixed(1, uint64(v))
}

// WriteUint16 writes a 16-bit unsigned value in the stream's byte order.
func (s *Stream) WriteUint16(v uint16) {
	s.writeFixed(2, uint64(v))
}

// WriteUint32 writes a 32-bit unsigned value in the stream's byte order.
func (s *Stream) WriteUint32(v uint32) {
	s.writeFixed(4, uint64(v))
}

// WriteUint64 writes a 64-bit unsigned value in the stream's byte order.
func (s *Stream) WriteUint64(v uint64) {
	s.writeFixed(8, v)
}

// WriteInt8 writes one signed byte.
func (s *Stream) WriteInt8(v int8) {
	s.writeFixed(1, uint64(uint8(v)))
}

// WriteInt16 writes a 16-bit signed value in the stream's byte order.
func (s *Stream) WriteInt16(v int16) {
	s.writeFixed(2, uint64(uint16(v)))
}

// WriteInt32 writes a 32-bit signed value in the stream's byte order.
func (s *Stream) WriteInt32(v int32) {
	s.writeFixed(4, uint64(uint32(v)))
}

// WriteInt64 writes a 64-bit signed value in the stream's byte order.
func (s *Stream) WriteInt64(v int64) {
	s.writeFixed(8, uint64(v))
}

// WriteFloat32 writes a 32-bit float in the stream's byte order.
func (s *Stream) WriteFloat32(v float32) {
	s.writeFixed(4, uint64(math.Float32bits(v)))
}

// WriteFloat64 writes a 64-bit float in the stream's byte order.
func (s *Stream) WriteFloat64(v float64) {
	s.writeFixed(8, math.Float64bits(v))
}

// WriteBool writes one byte, 1 for true and 0 for false.
func (s *Stream) WriteBool(v bool) {
	if v {
		s.writeFixed(1, 1)
		return
	}
	s.writeFixed(1, 0)
}
