package oracle

import chess "github.com/corentings/chess/v2"

// pawnAttackers[color][square] is the bitboard of squares from which a
// pawn of color attacks square -- the reverse of the usual "attacks from"
// table, since move ordering needs "what attacks this destination", not
// "what does this pawn attack". Built once at package init the same way
// treepeck-chego's init.go precomputes its leaper-piece attack tables
// (initPawnAttacks/genPawnAttacks): a plain nested loop over every
// square, run once, never touched again.
var pawnAttackers = initPawnAttackers()

func initPawnAttackers() [3][64]uint64 {
	var table [3][64]uint64
	for sq := 0; sq < 64; sq++ {
		file := sq % 8
		table[chess.White][sq] = attackerMask(sq, file, -9, -7)
		table[chess.Black][sq] = attackerMask(sq, file, 7, 9)
	}
	return table
}

// attackerMask returns the bitboard of up to two squares offset from sq
// by leftOffset/rightOffset, each only included when it doesn't wrap
// across the board edge.
func attackerMask(sq, file int, leftOffset, rightOffset int) uint64 {
	var mask uint64
	if left := sq + leftOffset; left >= 0 && left < 64 && file != 0 {
		mask |= 1 << uint(left)
	}
	if right := sq + rightOffset; right >= 0 && right < 64 && file != 7 {
		mask |= 1 << uint(right)
	}
	return mask
}

// DefendingPawns returns the bitboard of the opponent's pawns (relative
// to mover) that attack square -- pawn_attacks_from(opponent, square) &
// opponent_pawns(pos), exactly the intersection spec's move-ordering
// formula uses for defending_pawn_score.
func DefendingPawns(pos *Position, mover chess.Color, square int) uint64 {
	opponent := mover.Other()
	return pawnAttackers[opponent][square] & pawnBitboard(pos, opponent)
}

// pawnBitboard returns the bitboard of every pawn of color on pos. The
// published board type does not export its internal per-piece
// bitboards, so this walks the 64 squares once; "geometric,
// constant-folded" per spec, just computed from the public Piece(sq)
// accessor instead of a private field.
func pawnBitboard(pos *Position, color chess.Color) uint64 {
	var bb uint64
	board := pos.Board()
	for sq := 0; sq < 64; sq++ {
		p := board.Piece(chess.Square(sq))
		if p.Type() == chess.Pawn && p.Color() == color {
			bb |= 1 << uint(sq)
		}
	}
	return bb
}
