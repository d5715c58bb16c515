// Package position implements the bit-packed position codec: an 8-byte
// occupancy bitboard, a stream of 4-bit piece codes, and optional LEB128
// clocks. It is grounded directly on original_source/src/position.rs,
// the Rust reference this archive format was ported from.
//
// Setup (named after the shakmaty::Setup type position.rs marshals) is a
// plain data-transfer struct with no chess-rules awareness. It never
// touches the external oracle: materializing a real rules-aware position
// from decoded bytes would require FEN (or similar notation) to feed the
// oracle library's only construction path, and parsing/serializing
// chess notation is explicitly out of scope for this module. That
// conversion, where it's needed at all, lives in the CLI instead (see
// cmd/chesscompress), keeping this package's round-trip property --
// Decompress(Compress(s)) == s -- entirely self-contained.
package position

// Color is the side to move.
type Color int

const (
	White Color = iota
	Black
)

// Role is a piece's type, Pawn=1..King=6 matching spec's role_as_int
// convention (kept distinct from moveorder's 0-based RoleIndex, which
// this package has no reason to depend on).
type Role int

const (
	Pawn Role = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

// Square is a board square, 0..63, file 0..7 on rank 0..7 (a1=0, h8=63).
type Square int

// Piece is a role/color pair occupying a square.
type Piece struct {
	Role  Role
	Color Color
}

// Setup is the plain, rules-unaware position this codec marshals to and
// from bytes.
type Setup struct {
	Turn Color
	// Board maps occupied squares to their piece. Unset squares are
	// empty.
	Board map[Square]Piece
	// CastlingRooks is the set of unmoved rook squares -- "castling
	// rights" represented the way the wire format represents them.
	CastlingRooks map[Square]bool
	// EPSquare is the en-passant target square, or nil if none.
	EPSquare *Square
	Halfmoves uint32
	// Fullmoves is >= 1.
	Fullmoves uint32
}

// NewSetup returns an empty Setup with White to move, fullmove 1, no
// halfmoves -- the same defaults an absent ply/halfmove counter implies
// on decode.
func NewSetup() *Setup {
	return &Setup{
		Turn:          White,
		Board:         map[Square]Piece{},
		CastlingRooks: map[Square]bool{},
		Fullmoves:     1,
	}
}
