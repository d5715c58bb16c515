/*
Package moves implements the move-stream codec: encoding a ply as the
Huffman code of its index in the move-ordering heuristic's total order
over the position's legal moves, and decoding by replaying the same
ordering. Grounded on spec section 4.4; the ordering itself lives in
moveorder, the bit-level symbol codec in huffman, and position
attributes/replay in oracle.
*/
package moves

import (
	chess "github.com/corentings/chess/v2"

	"github.com/arnsholt/chess-compression/bitio"
	"github.com/arnsholt/chess-compression/chesserror"
	"github.com/arnsholt/chess-compression/huffman"
	"github.com/arnsholt/chess-compression/moveorder"
	"github.com/arnsholt/chess-compression/oracle"
)

// orderedMoves returns the legal moves of pos sorted by moveorder's total
// order, ascending by K(m) -- the same list both EncodePly and DecodePly
// must agree on for the index to mean anything.
func orderedMoves(pos *oracle.Position) []oracle.Move {
	legal := oracle.LegalMoves(pos)
	whiteToMove := oracle.Turn(pos) == chess.White

	candidates := make([]moveorder.Candidate, len(legal))
	for i := range legal {
		m := &legal[i]
		to := oracle.To(m)
		candidates[i] = moveorder.Candidate{
			Role:           oracle.RoleIndex(pos, m),
			To:             to,
			From:           oracle.From(m),
			PromotionRole:  oracle.PromotionRoleAsInt(m),
			IsCapture:      oracle.IsCapture(m),
			WhiteToMove:    whiteToMove,
			DefendingPawns: oracle.DefendingPawns(pos, oracle.Turn(pos), to),
		}
	}

	order := moveorder.Order(candidates)
	sorted := make([]oracle.Move, len(legal))
	for rank, i := range order {
		sorted[rank] = legal[i]
	}
	return sorted
}

// EncodePly writes the Huffman symbol for m's index in pos's ordered
// legal moves to w. Fails with MoveNotFound if m is not among them.
func EncodePly(w *bitio.Writer, pos *oracle.Position, m *oracle.Move) error {
	sorted := orderedMoves(pos)
	for i := range sorted {
		if oracle.SameMove(&sorted[i], m) {
			huffman.Encode(w, i)
			return nil
		}
	}
	return chesserror.NewMoveNotFound()
}

// DecodePly reads one Huffman symbol from r and returns the move at that
// index in pos's ordered legal moves.
func DecodePly(r *bitio.Reader, pos *oracle.Position) (*oracle.Move, error) {
	symbol, err := huffman.Decode(r)
	if err != nil {
		return nil, err
	}
	sorted := orderedMoves(pos)
	if symbol >= len(sorted) {
		return nil, chesserror.NewMoveNotFound()
	}
	return &sorted[symbol], nil
}

// CompressGame encodes moves played in sequence from start, returning the
// byte-padded bit stream. Each move must be legal in the position it is
// played from; a move that is not fails with MoveNotFound, raised by
// EncodePly before the move is replayed.
func CompressGame(start *oracle.Position, moves []oracle.Move) ([]byte, error) {
	w := bitio.NewWriter()
	current := start
	for i := range moves {
		m := &moves[i]
		if err := EncodePly(w, current, m); err != nil {
			return nil, err
		}
		current = oracle.Play(current, m)
	}
	w.PadToByte()
	return w.Bytes(), nil
}

// DecompressGame decodes n plies from data starting at start, returning
// the decoded moves in order. Trailing unread bits after the nth ply are
// discarded.
func DecompressGame(data []byte, start *oracle.Position, n int) ([]oracle.Move, error) {
	r := bitio.NewReader(data)
	current := start
	result := make([]oracle.Move, 0, n)
	for i := 0; i < n; i++ {
		m, err := DecodePly(r, current)
		if err != nil {
			return nil, err
		}
		result = append(result, *m)
		current = oracle.Play(current, m)
	}
	return result, nil
}
