// Package moveorder implements the deterministic total order over a
// position's legal moves that the move codec relies on to turn a move
// into (and back out of) a small integer index.
//
// Literal table provenance: like the Huffman codebook, the original
// archive format's literal PSQT arrays lived in the moves.rs source file
// that this module's reference material does not include. In its place
// this package uses the "simplified evaluation function" piece-square
// values, a public-domain constant set (Tomasz Michniewski, published on
// the Chess Programming Wiki) reproduced across countless independent
// chess engines -- the same kind of well-known literal table a chess
// engine author reaches for rather than hand-tuning from scratch. Each
// table is given here from White's point of view, rank 1 (index 0) to
// rank 8 (index 63), file a to file h; the vertical-flip rule in
// Order applies the mover's-perspective indexing described by the
// format.
package moveorder


var psqtPawn = [64]int{
	   0,    0,    0,    0,    0,    0,    0,    0,
	   5,   10,   10,  -20,  -20,   10,   10,    5,
	   5,   -5,  -10,    0,    0,  -10,   -5,    5,
	   0,    0,    0,   20,   20,    0,    0,    0,
	   5,    5,   10,   25,   25,   10,    5,    5,
	  10,   10,   20,   30,   30,   20,   10,   10,
	  50,   50,   50,   50,   50,   50,   50,   50,
	   0,    0,    0,    0,    0,    0,    0,    0,
}

var psqtKnight = [64]int{
	 -50,  -40,  -30,  -30,  -30,  -30,  -40,  -50,
	 -40,  -20,    0,    5,    5,    0,  -20,  -40,
	 -30,    5,   10,   15,   15,   10,    5,  -30,
	 -30,    0,   15,   20,   20,   15,    0,  -30,
	 -30,    5,   15,   20,   20,   15,    5,  -30,
	 -30,    0,   10,   15,   15,   10,    0,  -30,
	 -40,  -20,    0,    0,    0,    0,  -20,  -40,
	 -50,  -40,  -30,  -30,  -30,  -30,  -40,  -50,
}

var psqtBishop = [64]int{
	 -20,  -10,  -10,  -10,  -10,  -10,  -10,  -20,
	 -10,    5,    0,    0,    0,    0,    5,  -10,
	 -10,   10,   10,   10,   10,   10,   10,  -10,
	 -10,    0,   10,   10,   10,   10,    0,  -10,
	 -10,    5,    5,   10,   10,    5,    5,  -10,
	 -10,    0,    5,   10,   10,    5,    0,  -10,
	 -10,    0,    0,    0,    0,    0,    0,  -10,
	 -20,  -10,  -10,  -10,  -10,  -10,  -10,  -20,
}

var psqtRook = [64]int{
	   0,    0,    0,    5,    5,    0,    0,    0,
	  -5,    0,    0,    0,    0,    0,    0,   -5,
	  -5,    0,    0,    0,    0,    0,    0,   -5,
	  -5,    0,    0,    0,    0,    0,    0,   -5,
	  -5,    0,    0,    0,    0,    0,    0,   -5,
	  -5,    0,    0,    0,    0,    0,    0,   -5,
	   5,   10,   10,   10,   10,   10,   10,    5,
	   0,    0,    0,    0,    0,    0,    0,    0,
}

var psqtQueen = [64]int{
	 -20,  -10,  -10,   -5,   -5,  -10,  -10,  -20,
	 -10,    0,    5,    0,    0,    0,    0,  -10,
	 -10,    5,    5,    5,    5,    5,    0,  -10,
	   0,    0,    5,    5,    5,    5,    0,   -5,
	  -5,    0,    5,    5,    5,    5,    0,   -5,
	 -10,    0,    5,    5,    5,    5,    0,  -10,
	 -10,    0,    0,    0,    0,    0,    0,  -10,
	 -20,  -10,  -10,   -5,   -5,  -10,  -10,  -20,
}

var psqtKing = [64]int{
	  20,   30,   10,    0,    0,   10,   30,   20,
	  20,   20,    0,    0,    0,    0,   20,   20,
	 -10,  -20,  -20,  -20,  -20,  -20,  -20,  -10,
	 -20,  -30,  -30,  -40,  -40,  -30,  -30,  -20,
	 -30,  -40,  -40,  -50,  -50,  -40,  -40,  -30,
	 -30,  -40,  -40,  -50,  -50,  -40,  -40,  -30,
	 -30,  -40,  -40,  -50,  -50,  -40,  -40,  -30,
	 -30,  -40,  -40,  -50,  -50,  -40,  -40,  -30,
}
