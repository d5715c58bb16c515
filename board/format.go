// Package board renders a position.Setup as an ASCII/Unicode diagram, for
// the CLI's --board flag. Grounded on treepeck-chego's cli/cli.go and
// format/format.go, which both print a bitboard-per-piece board the same
// way; this package merges the two (they differed only in which sibling
// package's types they read bitboards from) and reads a position.Setup's
// square map instead of per-piece bitboards.
package board

import (
	"strings"

	"github.com/arnsholt/chess-compression/position"
)

var pieceSymbols = [6][2]rune{
	{'♙', '♟'},
	{'♘', '♞'},
	{'♗', '♝'},
	{'♖', '♜'},
	{'♕', '♛'},
	{'♔', '♚'},
}

var squareString = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Format renders s as an 8x8 diagram followed by side to move, en-passant
// target, and castling rights, in the same layout the teacher's
// FormatPosition produced.
func Format(s *position.Setup) string {
	var out strings.Builder

	for rank := 7; rank >= 0; rank-- {
		out.WriteByte(byte(rank) + 1 + '0')
		out.WriteString("  ")

		for file := 0; file < 8; file++ {
			sq := position.Square(rank*8 + file)

			symbol := '.'
			if piece, ok := s.Board[sq]; ok {
				symbol = pieceSymbols[piece.Role-1][piece.Color]
			}

			out.WriteRune(symbol)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}
	out.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if s.Turn == position.White {
		out.WriteString("white\nEn passant: ")
	} else {
		out.WriteString("black\nEn passant: ")
	}

	if s.EPSquare == nil {
		out.WriteString("none\nCastling rights: ")
	} else {
		out.WriteString(squareString[*s.EPSquare])
		out.WriteString("\nCastling rights: ")
	}

	rights := make([]position.Square, 0, len(s.CastlingRooks))
	for sq := range s.CastlingRooks {
		rights = append(rights, sq)
	}
	for i := 1; i < len(rights); i++ {
		for j := i; j > 0 && rights[j-1] > rights[j]; j-- {
			rights[j-1], rights[j] = rights[j], rights[j-1]
		}
	}
	for _, sq := range rights {
		out.WriteString(squareString[sq])
		out.WriteByte(' ')
	}

	return out.String()
}
