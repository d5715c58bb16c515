package leb128

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 50, 127, 128, 300, 1 << 20, ^uint64(0)}
	for _, v := range cases {
		var buf bytes.Buffer
		Write(&buf, v)

		got, err := Read(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestHalfmoveFiftyEncodesAsSingleByte(t *testing.T) {
	var buf bytes.Buffer
	Write(&buf, 50)
	require.Equal(t, []byte{0x32}, buf.Bytes())
}

func TestReadTruncatedFails(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0x80, 0x80}))
	require.Error(t, err)
}
