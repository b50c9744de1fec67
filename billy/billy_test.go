package billy

import (
	"io"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostream-io/stream"
)

func TestOpenRoundTrip(t *testing.T) {
	fs := memfs.New()

	w, err := Open(fs, "data.bin", stream.Write)
	require.NoError(t, err)

	w.WriteUint32(0xCAFEBABE)
	w.WriteString("memfs")
	w.WriteFloat64(2.5)
	require.NoError(t, w.Close())

	r, err := Open(fs, "data.bin", stream.Read)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, uint32(0xCAFEBABE), r.ReadUint32())
	assert.Equal(t, "memfs", r.ReadString(16))
	assert.Equal(t, 2.5, r.ReadFloat64())
}

func TestOpenNoAccess(t *testing.T) {
	_, err := Open(memfs.New(), "data.bin", 0)
	assert.ErrorIs(t, err, stream.ErrNoAccess)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(memfs.New(), "missing.bin", stream.Read)
	assert.Error(t, err)
}

func TestCapability(t *testing.T) {
	fs := memfs.New()

	w, err := Open(fs, "ro.bin", stream.Write)
	require.NoError(t, err)
	w.WriteUint64(42)
	require.NoError(t, w.Close())

	r, err := Open(fs, "ro.bin", stream.Read)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 0, r.Write([]byte{1, 2, 3}))
	assert.False(t, r.CanWrite())
	assert.True(t, r.CanRead())
	assert.Equal(t, uint64(42), r.ReadUint64())
}

func TestSeekTell(t *testing.T) {
	fs := memfs.New()

	s, err := Open(fs, "seek.bin", stream.ReadWrite)
	require.NoError(t, err)
	defer s.Close()

	s.WriteUint32(1)
	s.WriteUint32(2)
	assert.Equal(t, int64(8), s.Tell())

	pos, err := s.Seek(4, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pos)
	assert.Equal(t, uint32(2), s.ReadUint32())

	s.Reset()
	assert.Equal(t, int64(0), s.Tell())
	assert.Equal(t, uint32(1), s.ReadUint32())
}
