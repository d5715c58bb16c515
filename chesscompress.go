/*
Package chesscompress ties the move-stream and position codecs together
behind one import: the types a caller needs (Error, Kind) and the four
entry points (CompressMoves, DecompressMoves, CompressPosition,
DecompressPosition). The codecs themselves live in moves and position;
this file is pure glue, the root-level seam treepeck-chego's own chego.go
played for its movegen/fen/game subpackages.
*/
package chesscompress

import (
	"github.com/arnsholt/chess-compression/chesserror"
	"github.com/arnsholt/chess-compression/moves"
	"github.com/arnsholt/chess-compression/oracle"
	"github.com/arnsholt/chess-compression/position"
)

// Error and Kind are re-exported so callers never need to import
// chesserror directly.
type Error = chesserror.Error
type Kind = chesserror.Kind

const (
	IO           = chesserror.IO
	Chess        = chesserror.Chess
	MoveNotFound = chesserror.MoveNotFound
	MissingBytes = chesserror.MissingBytes
	SquareOffset = chesserror.SquareOffset
	Leb128       = chesserror.Leb128
	MissingPiece = chesserror.MissingPiece
)

// CompressMoves encodes the moves played from start into a byte-padded
// Huffman bit stream. See moves.CompressGame.
func CompressMoves(start *oracle.Position, played []oracle.Move) ([]byte, error) {
	return moves.CompressGame(start, played)
}

// DecompressMoves decodes n plies from data, replaying from start. See
// moves.DecompressGame.
func DecompressMoves(data []byte, start *oracle.Position, n int) ([]oracle.Move, error) {
	return moves.DecompressGame(data, start, n)
}

// CompressPosition encodes a position.Setup to its wire bytes. See
// position.Compress.
func CompressPosition(s *position.Setup) ([]byte, error) {
	return position.Compress(s)
}

// DecompressPosition decodes a position.Setup from its wire bytes. See
// position.Decompress.
func DecompressPosition(data []byte) (*position.Setup, error) {
	return position.Decompress(data)
}
