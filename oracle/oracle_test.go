package oracle

import (
	"testing"

	chess "github.com/corentings/chess/v2"
	"github.com/stretchr/testify/require"

	"github.com/arnsholt/chess-compression/moveorder"
)

func TestLegalMovesFromStartingPosition(t *testing.T) {
	pos := chess.StartingPosition()
	moves := LegalMoves(pos)
	require.Len(t, moves, 20)
}

func TestPlayAdvancesPosition(t *testing.T) {
	pos := chess.StartingPosition()
	m, err := DecodeUCI(pos, "e2e4")
	require.NoError(t, err)

	next := Play(pos, m)
	require.Equal(t, chess.Black, Turn(next))
}

func TestRoleIndexReadsMovingPieceBeforeItMoves(t *testing.T) {
	pos := chess.StartingPosition()
	m, err := DecodeUCI(pos, "g1f3")
	require.NoError(t, err)
	require.Equal(t, moveorder.Knight, RoleIndex(pos, m))
	require.Equal(t, 0, PromotionRoleAsInt(m))
	require.False(t, IsCapture(m))
}

func TestDefendingPawnsFindsOpposingPawnAttack(t *testing.T) {
	pos := chess.StartingPosition()
	m, err := DecodeUCI(pos, "e2e4")
	require.NoError(t, err)
	pos = Play(pos, m)
	m2, err := DecodeUCI(pos, "d7d5")
	require.NoError(t, err)
	pos = Play(pos, m2)

	// Black's pawn on d5 attacks e4 (White's pawn): the White pawn on e4
	// is defended from e4's perspective by nothing, but e4 itself
	// attacks d5/f5; check the reverse relation instead, that d5 is
	// attacked by White's e4 pawn.
	attackers := DefendingPawns(pos, chess.Black, int(chess.D5))
	require.NotZero(t, attackers&(1<<uint(chess.E4)))
}
