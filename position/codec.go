package position

import (
	"bytes"
	"encoding/binary"

	"github.com/arnsholt/chess-compression/chesserror"
	"github.com/arnsholt/chess-compression/leb128"
)

// Compress marshals s into the wire format: 8-byte big-endian occupancy,
// nibble-packed piece codes in ascending square order, then optional
// LEB128 halfmove/ply counters. Grounded on position.rs's compress().
func Compress(s *Setup) ([]byte, error) {
	squares := sortedSquares(s.Board)

	var occupied uint64
	for _, sq := range squares {
		occupied |= 1 << uint(sq)
	}

	var out bytes.Buffer
	var occBytes [8]byte
	binary.BigEndian.PutUint64(occBytes[:], occupied)
	out.Write(occBytes[:])

	pawnPushedTo, err := pawnPushedToSquare(s)
	if err != nil {
		return nil, err
	}
	if pawnPushedTo != nil {
		if err := checkPawnPushedTo(s, *pawnPushedTo); err != nil {
			return nil, err
		}
	}

	for i := 0; i < len(squares); i += 2 {
		lower := pieceValue(s, squares[i], pawnPushedTo)
		var upper byte
		if i+1 < len(squares) {
			upper = pieceValue(s, squares[i+1], pawnPushedTo)
		}
		out.WriteByte(upper<<4 | lower)
	}

	ply := (s.Fullmoves-1)*2 + blackOffset(s.Turn)
	brokenTurn := s.Turn == Black && !hasBlackKing(s.Board)

	if s.Halfmoves > 0 || ply > 1 || brokenTurn {
		leb128.Write(&out, uint64(s.Halfmoves))
	}
	if ply > 1 || brokenTurn {
		leb128.Write(&out, uint64(ply))
	}

	return out.Bytes(), nil
}

// Decompress reverses Compress. Grounded on position.rs's decompress().
func Decompress(data []byte) (*Setup, error) {
	if len(data) < 8 {
		return nil, chesserror.New(chesserror.MissingBytes, nil)
	}
	occupied := binary.BigEndian.Uint64(data[:8])

	s := NewSetup()
	i := 8
	var current byte
	readMore := true

	for sq := 0; sq < 64; sq++ {
		if occupied&(1<<uint(sq)) == 0 {
			continue
		}

		var value byte
		if readMore {
			if i >= len(data) {
				return nil, chesserror.New(chesserror.MissingBytes, nil)
			}
			current = data[i]
			i++
			value = current & 0x0f
		} else {
			value = (current & 0xf0) >> 4
		}
		readMore = !readMore

		square := Square(sq)
		piece := pieceFromValue(value, square)
		s.Board[square] = piece

		switch value {
		case 12:
			offset := -8
			if !isSouth(square) {
				offset = 8
			}
			pushed := int(square) + offset
			if pushed < 0 || pushed > 63 {
				return nil, chesserror.NewSquareOffset(int(square), offset)
			}
			target := Square(pushed)
			s.EPSquare = &target
		case 13, 14:
			s.CastlingRooks[square] = true
		case 15:
			s.Turn = Black
		}
	}

	rest := data[i:]
	if len(rest) > 0 {
		r := bytes.NewReader(rest)
		halfmoves, err := leb128.Read(r)
		if err != nil {
			return nil, err
		}
		s.Halfmoves = uint32(halfmoves)

		remaining := rest[len(rest)-r.Len():]
		if len(remaining) > 0 {
			ply, err := leb128.Read(bytes.NewReader(remaining))
			if err != nil {
				return nil, err
			}
			if ply%2 == 1 {
				s.Turn = Black
			}
			s.Fullmoves = uint32((uint64(ply)-uint64(blackOffset(s.Turn)))/2 + 1)
		}
	}

	return s, nil
}

func sortedSquares(board map[Square]Piece) []Square {
	squares := make([]Square, 0, len(board))
	for sq := range board {
		squares = append(squares, sq)
	}
	// Insertion sort is plenty for at most 64 elements and keeps this
	// package free of a sort.Slice closure allocation per call.
	for i := 1; i < len(squares); i++ {
		for j := i; j > 0 && squares[j-1] > squares[j]; j-- {
			squares[j-1], squares[j] = squares[j], squares[j-1]
		}
	}
	return squares
}

func blackOffset(c Color) uint32 {
	if c == Black {
		return 1
	}
	return 0
}

func hasBlackKing(board map[Square]Piece) bool {
	for _, p := range board {
		if p.Role == King && p.Color == Black {
			return true
		}
	}
	return false
}

// pawnPushedToSquare computes the square a pawn just pushed to, from the
// en-passant target, or nil if there is none.
func pawnPushedToSquare(s *Setup) (*Square, error) {
	if s.EPSquare == nil {
		return nil, nil
	}
	offset := -8
	if s.Turn == Black {
		offset = 8
	}
	pushed := int(*s.EPSquare) + offset
	if pushed < 0 || pushed > 63 {
		return nil, chesserror.NewSquareOffset(int(*s.EPSquare), offset)
	}
	sq := Square(pushed)
	return &sq, nil
}

// checkPawnPushedTo verifies the pushed-to square actually holds a pawn,
// raising MissingPiece otherwise -- the encoder-side sanity check spec
// calls for, which the Rust reference leaves as an unchecked assumption.
func checkPawnPushedTo(s *Setup, sq Square) error {
	piece, ok := s.Board[sq]
	if !ok || piece.Role != Pawn {
		return chesserror.NewMissingPiece(s, int(sq))
	}
	return nil
}

func isSouth(sq Square) bool { return sq < 32 }

// pieceValue maps a board square to its 4-bit wire code, per the literal
// table in spec section 4.5.
func pieceValue(s *Setup, sq Square, pawnPushedTo *Square) byte {
	piece := s.Board[sq]

	if piece.Role == Pawn && pawnPushedTo != nil && *pawnPushedTo == sq {
		return 12
	}

	switch piece.Role {
	case Pawn:
		if piece.Color == White {
			return 0
		}
		return 1
	case Knight:
		if piece.Color == White {
			return 2
		}
		return 3
	case Bishop:
		if piece.Color == White {
			return 4
		}
		return 5
	case Rook:
		if piece.Color == White {
			if s.CastlingRooks[sq] {
				return 13
			}
			return 6
		}
		if s.CastlingRooks[sq] {
			return 14
		}
		return 7
	case Queen:
		if piece.Color == White {
			return 8
		}
		return 9
	case King:
		if piece.Color == White {
			return 10
		}
		if s.Turn == Black {
			return 15
		}
		return 11
	}
	return 0
}

// pieceFromValue is the inverse of pieceValue.
func pieceFromValue(value byte, sq Square) Piece {
	switch value {
	case 0:
		return Piece{Role: Pawn, Color: White}
	case 1:
		return Piece{Role: Pawn, Color: Black}
	case 2:
		return Piece{Role: Knight, Color: White}
	case 3:
		return Piece{Role: Knight, Color: Black}
	case 4:
		return Piece{Role: Bishop, Color: White}
	case 5:
		return Piece{Role: Bishop, Color: Black}
	case 6, 13:
		return Piece{Role: Rook, Color: White}
	case 7, 14:
		return Piece{Role: Rook, Color: Black}
	case 8:
		return Piece{Role: Queen, Color: White}
	case 9:
		return Piece{Role: Queen, Color: Black}
	case 10:
		return Piece{Role: King, Color: White}
	case 11, 15:
		return Piece{Role: King, Color: Black}
	case 12:
		color := Black
		if isSouth(sq) {
			color = White
		}
		return Piece{Role: Pawn, Color: color}
	default:
		return Piece{}
	}
}
