package huffman

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnsholt/chess-compression/bitio"
)

func TestCodebookIsCompletePrefixCode(t *testing.T) {
	seen := map[string]bool{}
	var kraft float64
	for _, entry := range codebook {
		require.GreaterOrEqual(t, entry.Length, uint8(1))
		require.LessOrEqual(t, entry.Length, uint8(31))

		key := fmt.Sprintf("%d-%d", entry.Length, entry.Code)
		require.False(t, seen[key], "duplicate (code,length) pair")
		seen[key] = true

		kraft += math.Pow(2, -float64(entry.Length))
	}
	require.InDelta(t, 1.0, kraft, 1e-9, "Kraft inequality must be an equality for a complete code")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for symbol := 0; symbol < 256; symbol++ {
		w := bitio.NewWriter()
		Encode(w, symbol)
		w.PadToByte()

		got, err := Decode(bitio.NewReader(w.Bytes()))
		require.NoError(t, err)
		require.Equal(t, symbol, got)
	}
}

func TestDecodeTerminatesWithinThirtyOneBits(t *testing.T) {
	// An all-ones 31-bit stream must resolve to some leaf within 31 bit
	// reads, never hang or require lookahead past the longest code.
	r := bitio.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	symbol, err := Decode(r)
	require.NoError(t, err)
	require.GreaterOrEqual(t, symbol, 0)
	require.Less(t, symbol, 256)
}

func TestTrieIsBuiltOnceAndShared(t *testing.T) {
	a := Trie()
	b := Trie()
	require.Same(t, a, b)
}
