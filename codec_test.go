package stream

import (
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func roundTrip(t *testing.T, order binary.ByteOrder) {
	t.Helper()

	s, err := NewMemorySize(64, ReadWrite)
	if err != nil {
		t.Fatalf("NewMemorySize failed: %v", err)
	}
	defer s.Close()
	s.SetByteOrder(order)

	s.WriteUint8(0xAB)
	s.WriteUint16(0xBEEF)
	s.WriteUint32(0xDEADBEEF)
	s.WriteUint64(0x0123456789ABCDEF)
	s.WriteInt8(-5)
	s.WriteInt16(-12345)
	s.WriteInt32(-123456789)
	s.WriteInt64(-1234567890123456789)
	s.WriteFloat32(3.25)
	s.WriteFloat64(-2.625)
	s.WriteBool(true)
	s.WriteBool(false)

	s.Reset()

	if v := s.ReadUint8(); v != 0xAB {
		t.Errorf("uint8 round trip: got %#x", v)
	}
	if v := s.ReadUint16(); v != 0xBEEF {
		t.Errorf("uint16 round trip: got %#x", v)
	}
	if v := s.ReadUint32(); v != 0xDEADBEEF {
		t.Errorf("uint32 round trip: got %#x", v)
	}
	if v := s.ReadUint64(); v != 0x0123456789ABCDEF {
		t.Errorf("uint64 round trip: got %#x", v)
	}
	if v := s.ReadInt8(); v != -5 {
		t.Errorf("int8 round trip: got %d", v)
	}
	if v := s.ReadInt16(); v != -12345 {
		t.Errorf("int16 round trip: got %d", v)
	}
	if v := s.ReadInt32(); v != -123456789 {
		t.Errorf("int32 round trip: got %d", v)
	}
	if v := s.ReadInt64(); v != -1234567890123456789 {
		t.Errorf("int64 round trip: got %d", v)
	}
	if v := s.ReadFloat32(); v != 3.25 {
		t.Errorf("float32 round trip: got %v", v)
	}
	if v := s.ReadFloat64(); v != -2.625 {
		t.Errorf("float64 round trip: got %v", v)
	}
	if v := s.ReadBool(); !v {
		t.Error("bool round trip: got false, want true")
	}
	if v := s.ReadBool(); v {
		t.Error("bool round trip: got true, want false")
	}
}

func TestRoundTripLittleEndian(t *testing.T) {
	roundTrip(t, binary.LittleEndian)
}

func TestRoundTripBigEndian(t *testing.T) {
	roundTrip(t, binary.BigEndian)
}

func TestEndiannessScenario(t *testing.T) {
	// [0x01 0x00 0x00 0x00] is 1 little-endian and 16777216 big-endian.
	buf := []byte{0x01, 0x00, 0x00, 0x00}

	le, err := NewMemory(buf, Read)
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	defer le.Close()
	if v := le.ReadUint32(); v != 1 {
		t.Fatalf("little-endian read: got %d, want 1", v)
	}

	be, err := NewMemory(buf, Read)
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	defer be.Close()
	be.SetByteOrder(binary.BigEndian)
	if v := be.ReadUint32(); v != 16777216 {
		t.Fatalf("big-endian read: got %d, want 16777216", v)
	}
}

func TestEndiannessSymmetry(t *testing.T) {
	s, err := NewMemorySize(4, ReadWrite)
	if err != nil {
		t.Fatalf("NewMemorySize failed: %v", err)
	}
	defer s.Close()

	const v = uint32(0x11223344)
	s.WriteUint32(v)

	s.Reset()
	s.SetByteOrder(binary.BigEndian)
	want := uint32(0x44332211)
	if got := s.ReadUint32(); got != want {
		t.Fatalf("cross-order read: got %#x, want %#x", got, want)
	}

	// And the reverse direction.
	s.Reset()
	s.WriteUint32(v) // now big-endian
	s.Reset()
	s.SetByteOrder(binary.LittleEndian)
	if got := s.ReadUint32(); got != want {
		t.Fatalf("cross-order read: got %#x, want %#x", got, want)
	}
}

func TestShortReadYieldsZero(t *testing.T) {
	s, err := NewMemory([]byte{0xFF, 0xFF}, Read)
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	defer s.Close()

	if v := s.ReadUint32(); v != 0 {
		t.Fatalf("short typed read: got %#x, want 0", v)
	}
	// The two available bytes were consumed by the attempt.
	if pos := s.Tell(); pos != 2 {
		t.Fatalf("cursor at %d after short read, want 2", pos)
	}
	if v := s.ReadUint64(); v != 0 {
		t.Fatalf("typed read at end: got %#x, want 0", v)
	}
	if v := s.ReadFloat64(); v != 0 {
		t.Fatalf("typed float read at end: got %v, want 0", v)
	}
}

func TestTypedWriteOnReadOnlyIgnored(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	s, err := NewMemory(buf, Read)
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	defer s.Close()

	s.WriteUint64(0xFFFFFFFFFFFFFFFF)
	if pos := s.Tell(); pos != 0 {
		t.Fatalf("cursor moved to %d by ignored write", pos)
	}
	if v := s.ReadUint64(); v != binary.LittleEndian.Uint64(buf) {
		t.Fatalf("buffer mutated by ignored write: got %#x", v)
	}
}

func TestFloatBitPatterns(t *testing.T) {
	s, err := NewMemorySize(16, ReadWrite)
	if err != nil {
		t.Fatalf("NewMemorySize failed: %v", err)
	}
	defer s.Close()

	s.WriteFloat32(float32(math.Inf(1)))
	s.WriteFloat64(math.Copysign(0, -1))
	s.Reset()

	if v := s.ReadFloat32(); !math.IsInf(float64(v), 1) {
		t.Fatalf("+Inf round trip: got %v", v)
	}
	if v := s.ReadFloat64(); math.Signbit(v) == false || v != 0 {
		t.Fatalf("-0 round trip: got %v", v)
	}
}

func TestSwitchOrderMidStream(t *testing.T) {
	s, err := NewMemorySize(8, ReadWrite)
	if err != nil {
		t.Fatalf("NewMemorySize failed: %v", err)
	}
	defer s.Close()

	s.WriteUint32(0x01020304)
	s.SetByteOrder(binary.BigEndian)
	s.WriteUint32(0x01020304)

	s.Reset()
	want := []byte{0x04, 0x03, 0x02, 0x01, 0x01, 0x02, 0x03, 0x04}
	got := make([]byte, 8)
	if n := s.Read(got); n != 8 {
		t.Fatalf("Read returned %d", n)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d is %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestNativeOrder(t *testing.T) {
	order := NativeOrder()
	if order != binary.LittleEndian && order != binary.BigEndian {
		t.Fatalf("NativeOrder returned %v", order)
	}

	// A value written in the native order must match an unsafe-free probe:
	// writing 1 as uint16 puts the low byte first exactly when the platform
	// is little-endian.
	s, err := NewMemorySize(2, ReadWrite)
	if err != nil {
		t.Fatalf("NewMemorySize failed: %v", err)
	}
	defer s.Close()
	s.SetByteOrder(order)
	s.WriteUint16(1)

	s.Reset()
	first := s.ReadUint8()
	if (order == binary.LittleEndian) != (first == 1) {
		t.Fatalf("NativeOrder %v disagrees with layout (first byte %d)", order, first)
	}
}

func TestDefaultOrderIsLittleEndian(t *testing.T) {
	s, err := NewMemorySize(2, ReadWrite)
	if err != nil {
		t.Fatalf("NewMemorySize failed: %v", err)
	}
	defer s.Close()

	if s.ByteOrder() != binary.LittleEndian {
		t.Fatalf("default order is %v", s.ByteOrder())
	}
	s.WriteUint16(0x0102)
	s.Seek(0, io.SeekStart)
	if b := s.ReadUint8(); b != 0x02 {
		t.Fatalf("first byte is %#x, want 0x02", b)
	}
}
