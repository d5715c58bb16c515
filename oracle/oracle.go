/*
Package oracle is the thin adapter over the external chess rules engine
that spec's "inbound interface" describes: legal move generation, move
application, pawn attacks, and position attribute accessors. It exposes
Position and Move as aliases of github.com/corentings/chess/v2's own
types so callers can pass them around without a wrapper struct getting
in the way. The moves package still imports the library for its Color
constants, and the CLI imports it for FEN parsing and UCI output.

Re-implementing any of this in-house (magic-bitboard move generation,
like treepeck-chego's movegen.go/init.go, or FEN parsing, like its
fen.go) would contradict the Non-goals this module carries forward
unmodified: "implementing chess rules" and "parsing/serializing standard
chess notation" are both out of scope for the core codec. A real,
published engine satisfies the same role the teacher's own movegen did,
without smuggling either Non-goal back in through the codec packages.
*/
package oracle

import (
	chess "github.com/corentings/chess/v2"

	"github.com/arnsholt/chess-compression/moveorder"
)

// Position is the live, rules-aware position used by the move-stream
// codec. It is never marshaled directly; the position package's Setup
// type is the wire format, and the two are intentionally not the same
// type (cmd/chesscompress's setupFromOracle converts a Position to a
// Setup; there is no conversion in the other direction).
type Position = chess.Position

// Move is one legal move as generated by the oracle.
type Move = chess.Move

// LegalMoves returns the legal moves of pos. The oracle already
// guarantees determinism for a fixed position.
func LegalMoves(pos *Position) []Move {
	return pos.ValidMoves()
}

// Play applies m to pos and returns the resulting position. The oracle
// does not validate m against pos beyond what ValidMoves already
// guarantees; callers are expected to only ever play moves drawn from
// LegalMoves of the same position, per spec's move-codec contract.
func Play(pos *Position, m *Move) *Position {
	return pos.Update(m)
}

// Turn returns the side to move.
func Turn(pos *Position) chess.Color {
	return pos.Turn()
}

// RoleIndex maps a move's moving piece to moveorder's Pawn=0..King=5
// indexing. The moving piece is read off the board before the move is
// applied, since Move itself only carries squares and an optional
// promotion piece.
func RoleIndex(pos *Position, m *Move) moveorder.RoleIndex {
	return pieceTypeToRoleIndex(pos.Board().Piece(m.S1()).Type())
}

// PromotionRoleAsInt returns the promotion role as 1..6 (Pawn=1..King=6),
// or 0 if m is not a promotion.
func PromotionRoleAsInt(m *Move) int {
	if m.Promo() == chess.NoPieceType {
		return 0
	}
	return int(pieceTypeToRoleIndex(m.Promo())) + 1
}

// IsCapture reports whether m captures a piece, including en passant.
func IsCapture(m *Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

// To, From return a move's destination and origin squares as 0..63.
func To(m *Move) int   { return int(m.S2()) }
func From(m *Move) int { return int(m.S1()) }

func pieceTypeToRoleIndex(pt chess.PieceType) moveorder.RoleIndex {
	switch pt {
	case chess.Pawn:
		return moveorder.Pawn
	case chess.Knight:
		return moveorder.Knight
	case chess.Bishop:
		return moveorder.Bishop
	case chess.Rook:
		return moveorder.Rook
	case chess.Queen:
		return moveorder.Queen
	default:
		return moveorder.King
	}
}

// SameMove reports whether two legal moves of the same position are the
// move codec's notion of "the same move": identical from/to/promotion.
// Oracle Move values returned from repeated ValidMoves() calls on an
// equal position compare equal by value, but callers that reconstruct a
// move independently (e.g. the CLI, from UCI notation) need a comparison
// that doesn't depend on every internal tag lining up.
func SameMove(a, b *Move) bool {
	return a.S1() == b.S1() && a.S2() == b.S2() && a.Promo() == b.Promo()
}

// DecodeUCI parses UCI notation ("e2e4", "e7e8q") into a move legal in
// pos. Only the CLI calls this; the core codec packages (moves,
// position) never touch chess notation, per the Non-goal they carry.
func DecodeUCI(pos *Position, s string) (*Move, error) {
	return chess.UCINotation{}.Decode(pos, s)
}
