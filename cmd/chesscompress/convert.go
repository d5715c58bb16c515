package main

import (
	"fmt"
	"strings"

	chess "github.com/corentings/chess/v2"

	"github.com/arnsholt/chess-compression/position"
)

// setupFromOracle builds a position.Setup from a live oracle position.
// This conversion -- and its inverse, setupToFEN -- lives in the CLI, not
// in the position or oracle packages: reading FEN-shaped attributes
// (castle rights as a "KQkq" string) off an oracle.Position is exactly
// the chess-notation surface both of those packages' Non-goals exclude.
func setupFromOracle(pos *chess.Position) *position.Setup {
	s := position.NewSetup()
	if pos.Turn() == chess.Black {
		s.Turn = position.Black
	}
	s.Halfmoves = uint32(pos.HalfMoveClock())
	s.Fullmoves = uint32((pos.Ply())/2 + 1)

	board := pos.Board()
	for sq := 0; sq < 64; sq++ {
		p := board.Piece(chess.Square(sq))
		if p == chess.NoPiece {
			continue
		}
		s.Board[position.Square(sq)] = position.Piece{
			Role:  roleFromPieceType(p.Type()),
			Color: colorFromChessColor(p.Color()),
		}
	}

	rights := string(pos.CastleRights())
	if strings.ContainsRune(rights, 'K') {
		s.CastlingRooks[position.Square(7)] = true
	}
	if strings.ContainsRune(rights, 'Q') {
		s.CastlingRooks[position.Square(0)] = true
	}
	if strings.ContainsRune(rights, 'k') {
		s.CastlingRooks[position.Square(63)] = true
	}
	if strings.ContainsRune(rights, 'q') {
		s.CastlingRooks[position.Square(56)] = true
	}

	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		sq := position.Square(ep)
		s.EPSquare = &sq
	}

	return s
}

func roleFromPieceType(pt chess.PieceType) position.Role {
	switch pt {
	case chess.Pawn:
		return position.Pawn
	case chess.Knight:
		return position.Knight
	case chess.Bishop:
		return position.Bishop
	case chess.Rook:
		return position.Rook
	case chess.Queen:
		return position.Queen
	default:
		return position.King
	}
}

func colorFromChessColor(c chess.Color) position.Color {
	if c == chess.Black {
		return position.Black
	}
	return position.White
}

// setupToFEN renders a decoded Setup back to FEN text for display. It
// only needs to be readable by a human or fed back into another chess
// tool, so it is built directly from Setup's fields rather than round
// tripping through oracle.Position (which has no public constructor from
// arbitrary piece placement).
func setupToFEN(s *position.Setup) string {
	var ranks [8]strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := position.Square(rank*8 + file)
			piece, ok := s.Board[sq]
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&ranks[rank], "%d", empty)
				empty = 0
			}
			ranks[rank].WriteRune(fenLetter(piece))
		}
		if empty > 0 {
			fmt.Fprintf(&ranks[rank], "%d", empty)
		}
	}

	var board strings.Builder
	for rank := 7; rank >= 0; rank-- {
		board.WriteString(ranks[rank].String())
		if rank > 0 {
			board.WriteByte('/')
		}
	}

	turn := "w"
	if s.Turn == position.Black {
		turn = "b"
	}

	castling := fenCastling(s)
	ep := "-"
	if s.EPSquare != nil {
		ep = squareName(*s.EPSquare)
	}

	return fmt.Sprintf("%s %s %s %s %d %d", board.String(), turn, castling, ep, s.Halfmoves, s.Fullmoves)
}

func fenLetter(p position.Piece) rune {
	var letter rune
	switch p.Role {
	case position.Pawn:
		letter = 'p'
	case position.Knight:
		letter = 'n'
	case position.Bishop:
		letter = 'b'
	case position.Rook:
		letter = 'r'
	case position.Queen:
		letter = 'q'
	case position.King:
		letter = 'k'
	}
	if p.Color == position.White {
		letter -= 'a' - 'A'
	}
	return letter
}

func squareName(sq position.Square) string {
	file := byte(sq%8) + 'a'
	rank := byte(sq/8) + '1'
	return string([]byte{file, rank})
}

func fenCastling(s *position.Setup) string {
	var out strings.Builder
	if s.CastlingRooks[position.Square(7)] {
		out.WriteByte('K')
	}
	if s.CastlingRooks[position.Square(0)] {
		out.WriteByte('Q')
	}
	if s.CastlingRooks[position.Square(63)] {
		out.WriteByte('k')
	}
	if s.CastlingRooks[position.Square(56)] {
		out.WriteByte('q')
	}
	if out.Len() == 0 {
		return "-"
	}
	return out.String()
}
