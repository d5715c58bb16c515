package huffman

import (
	"sync"

	"github.com/arnsholt/chess-compression/bitio"
)

// node is an interior or leaf node of the decoding trie. A leaf has
// zero == one == nil and carries the decoded symbol.
type node struct {
	zero, one *node
	symbol    int
	leaf      bool
}

var (
	trieOnce sync.Once
	trieRoot *node
)

// Trie returns the process-wide decoding trie, building it from codebook
// on the first call via sync.Once -- Go's idiomatic stand-in for a lazy
// static. Every call thereafter shares the same read-only tree.
func Trie() *node {
	trieOnce.Do(func() {
		trieRoot = buildTrie(0, 0)
	})
	return trieRoot
}

// buildTrie recurses per spec: at (code, length), if some codebook entry
// matches exactly, emit a leaf; otherwise branch into (code<<1, length+1)
// and ((code<<1)|1, length+1). Recursion terminates because the codebook
// is a complete prefix code with bounded lengths (<=31).
func buildTrie(code uint32, length uint8) *node {
	for symbol, entry := range codebook {
		if entry.Code == code && entry.Length == length {
			return &node{symbol: symbol, leaf: true}
		}
	}
	return &node{
		zero: buildTrie(code<<1, length+1),
		one:  buildTrie(code<<1|1, length+1),
	}
}

// Encode writes the Huffman code for symbol to w.
func Encode(w *bitio.Writer, symbol int) {
	entry := codebook[symbol]
	w.Write(entry.Code, int(entry.Length))
}

// Decode descends the trie from the root, reading one bit at a time from
// r, until it reaches a leaf, and returns that leaf's symbol. Fails with
// an IO error if r underflows mid-descent.
func Decode(r *bitio.Reader) (int, error) {
	n := Trie()
	for !n.leaf {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			n = n.zero
		} else {
			n = n.one
		}
	}
	return n.symbol, nil
}
