package moveorder

import "sort"

// RoleIndex identifies the six piece roles for PSQT lookup, Pawn=0..King=5.
type RoleIndex int

const (
	Pawn RoleIndex = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// psqtByRole mirrors the literal order Pawn, Knight, Bishop, Rook, Queen,
// King from the source listing.
var psqtByRole = [6]*[64]int{&psqtPawn, &psqtKnight, &psqtBishop, &psqtRook, &psqtQueen, &psqtKing}

// Candidate is everything Order needs about one legal move to compute its
// sort key, gathered by the caller (the moves package, via the oracle
// adapter) so this package stays free of any chess-rules dependency.
type Candidate struct {
	// Role is the moving piece's role, Pawn=0..King=5.
	Role RoleIndex
	// To, From are the move's squares, 0..63, unflipped (White's frame).
	To, From int
	// PromotionRole is the promotion role as 1..6 (Pawn=1..King=6), or 0
	// if the move is not a promotion.
	PromotionRole int
	// IsCapture is true iff the move captures a piece.
	IsCapture bool
	// WhiteToMove is true iff White is to move in the position the move
	// is drawn from; it selects the vertical-flip rule.
	WhiteToMove bool
	// DefendingPawns is the bitboard of enemy pawns attacking the
	// destination square (pawn_attacks_from(opponent, to) & opponent
	// pawns), supplied by the caller since only it has the oracle.
	DefendingPawns uint64
}

// score computes K(m) per spec: a signed composite of promotion, capture,
// defending-pawn, PSQT delta, and square fields, negated as a whole so
// ascending sort by score matches descending sort by the unnegated
// composite.
func score(c Candidate) int32 {
	toIdx, fromIdx := c.To, c.From
	if c.WhiteToMove {
		toIdx ^= 56
		fromIdx ^= 56
	}

	table := psqtByRole[c.Role]
	moveValue := table[toIdx] - table[fromIdx]

	var defendingPawnScore int32 = 6
	if c.DefendingPawns != 0 {
		defendingPawnScore = 6 - int32(roleAsInt(c.Role))
	}

	var composite int32
	if c.PromotionRole != 0 {
		composite += int32(c.PromotionRole-1) << 26
	}
	if c.IsCapture {
		composite += 1 << 25
	}
	composite += defendingPawnScore << 22
	composite += (512 + int32(moveValue)) << 12
	composite += int32(c.To) << 6
	composite += int32(c.From)

	return -composite
}

// roleAsInt maps Pawn=0..King=5 to Pawn=1..King=6.
func roleAsInt(r RoleIndex) int { return int(r) + 1 }

// Order returns the indices of candidates in ascending order of K(m), the
// total order the move codec stores positions by. Ties are impossible in
// practice since the key includes the unique (to, from) pair.
func Order(candidates []Candidate) []int {
	idx := make([]int, len(candidates))
	keys := make([]int32, len(candidates))
	for i, c := range candidates {
		idx[i] = i
		keys[i] = score(c)
	}
	sort.Slice(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})
	return idx
}
