package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnsholt/chess-compression/chesserror"
)

func TestEmptyBoardEncodesToEightBytes(t *testing.T) {
	s := NewSetup()
	out, err := Compress(s)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 8), out)
}

func startingSetup() *Setup {
	s := NewSetup()
	back := []Role{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < 8; file++ {
		s.Board[Square(file)] = Piece{Role: back[file], Color: White}
		s.Board[Square(8+file)] = Piece{Role: Pawn, Color: White}
		s.Board[Square(48+file)] = Piece{Role: Pawn, Color: Black}
		s.Board[Square(56+file)] = Piece{Role: back[file], Color: Black}
	}
	s.CastlingRooks[Square(0)] = true
	s.CastlingRooks[Square(7)] = true
	s.CastlingRooks[Square(56)] = true
	s.CastlingRooks[Square(63)] = true
	return s
}

func TestStartingPositionEncodesToTwentyFourBytes(t *testing.T) {
	out, err := Compress(startingSetup())
	require.NoError(t, err)
	require.Len(t, out, 24)
}

func TestStartingPositionRoundTrips(t *testing.T) {
	s := startingSetup()
	out, err := Compress(s)
	require.NoError(t, err)

	got, err := Decompress(out)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestEnPassantSquareRoundTrips(t *testing.T) {
	s := startingSetup()
	// Replay 1. e4: move the e2 pawn to e4, clear e2, set ep target e3,
	// flip the turn, and reset the halfmove clock (a pawn move).
	delete(s.Board, Square(12)) // e2
	s.Board[Square(28)] = Piece{Role: Pawn, Color: White} // e4
	ep := Square(20)                                      // e3
	s.EPSquare = &ep
	s.Turn = Black

	out, err := Compress(s)
	require.NoError(t, err)

	got, err := Decompress(out)
	require.NoError(t, err)
	require.NotNil(t, got.EPSquare)
	require.Equal(t, Square(20), *got.EPSquare)
	require.Equal(t, Black, got.Turn)
}

func TestHalfmoveClockEncodesAsSingleByte(t *testing.T) {
	s := NewSetup()
	s.Halfmoves = 50

	out, err := Compress(s)
	require.NoError(t, err)
	require.Equal(t, append(make([]byte, 8), 0x32), out)

	got, err := Decompress(out)
	require.NoError(t, err)
	require.EqualValues(t, 50, got.Halfmoves)
	require.EqualValues(t, 1, got.Fullmoves)
}

func TestDecompressTruncatedOccupancyFails(t *testing.T) {
	_, err := Decompress([]byte{0, 0, 0})
	require.Error(t, err)
	var ccErr *chesserror.Error
	require.ErrorAs(t, err, &ccErr)
	require.Equal(t, chesserror.MissingBytes, ccErr.Kind)
}

func TestDecompressTruncatedNibblesFails(t *testing.T) {
	occ := make([]byte, 8)
	occ[7] = 0b00000011 // two occupied squares, no nibble byte follows
	_, err := Decompress(occ)
	require.Error(t, err)
}

func TestCompressMissingPieceAtPushedToSquare(t *testing.T) {
	s := NewSetup()
	ep := Square(20) // e3
	s.EPSquare = &ep
	s.Turn = White // pushed-to square is e3-8=e2(12), left empty

	_, err := Compress(s)
	require.Error(t, err)
	var ccErr *chesserror.Error
	require.ErrorAs(t, err, &ccErr)
	require.Equal(t, chesserror.MissingPiece, ccErr.Kind)
}

func TestCompressSquareOffsetError(t *testing.T) {
	s := NewSetup()
	ep := Square(60)
	s.EPSquare = &ep
	s.Turn = Black // offset +8 pushes 60 -> 68, out of range

	_, err := Compress(s)
	require.Error(t, err)
	var ccErr *chesserror.Error
	require.ErrorAs(t, err, &ccErr)
	require.Equal(t, chesserror.SquareOffset, ccErr.Kind)
}
