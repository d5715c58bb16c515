package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Write(0b101, 3)
	w.Write(0b1, 1)
	w.Write(0b11001100, 8)
	w.PadToByte()

	r := NewReader(w.Bytes())
	v, err := r.Read(3)
	require.NoError(t, err)
	require.EqualValues(t, 0b101, v)

	v, err = r.Read(1)
	require.NoError(t, err)
	require.EqualValues(t, 1, v)

	v, err = r.Read(8)
	require.NoError(t, err)
	require.EqualValues(t, 0b11001100, v)
}

func TestPadToByteAlignsAndIsIdempotent(t *testing.T) {
	w := NewWriter()
	w.Write(0b1, 1)
	w.PadToByte()
	require.Len(t, w.Bytes(), 1)
	require.Equal(t, byte(0b10000000), w.Bytes()[0])

	w.PadToByte()
	require.Len(t, w.Bytes(), 1, "padding an already-aligned stream must not append a byte")
}

func TestWriteMSBFirst(t *testing.T) {
	w := NewWriter()
	w.Write(0b10110010, 8)
	require.Equal(t, []byte{0b10110010}, w.Bytes())
}

func TestReadExhaustedReturnsIOError(t *testing.T) {
	r := NewReader([]byte{0xFF})
	_, err := r.Read(8)
	require.NoError(t, err)

	_, err = r.Read(1)
	require.Error(t, err)
}

func TestReadUpToThirtyOneBits(t *testing.T) {
	w := NewWriter()
	const code = 0x7FFFFFFE // 31 significant bits
	w.Write(code, 31)
	w.PadToByte()

	r := NewReader(w.Bytes())
	v, err := r.Read(31)
	require.NoError(t, err)
	require.EqualValues(t, code, v)
}
