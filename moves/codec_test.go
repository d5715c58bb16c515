package moves

import (
	"testing"

	chess "github.com/corentings/chess/v2"
	"github.com/stretchr/testify/require"

	"github.com/arnsholt/chess-compression/bitio"
	"github.com/arnsholt/chess-compression/chesserror"
	"github.com/arnsholt/chess-compression/oracle"
)

func uciMoves(t *testing.T, start *oracle.Position, ucis []string) []oracle.Move {
	t.Helper()
	current := start
	result := make([]oracle.Move, 0, len(ucis))
	for _, s := range ucis {
		m, err := oracle.DecodeUCI(current, s)
		require.NoError(t, err)
		result = append(result, *m)
		current = oracle.Play(current, m)
	}
	return result
}

func TestSingleMoveRoundTrips(t *testing.T) {
	start := chess.StartingPosition()
	played := uciMoves(t, start, []string{"e2e4"})

	out, err := CompressGame(start, played)
	require.NoError(t, err)
	require.LessOrEqual(t, len(out), 2)

	got, err := DecompressGame(out, start, len(played))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, oracle.SameMove(&got[0], &played[0]))
}

func TestFourPlyGameRoundTrips(t *testing.T) {
	start := chess.StartingPosition()
	played := uciMoves(t, start, []string{"e2e4", "e7e5", "g1f3", "b8c6"})

	out, err := CompressGame(start, played)
	require.NoError(t, err)

	got, err := DecompressGame(out, start, len(played))
	require.NoError(t, err)
	require.Len(t, got, len(played))
	for i := range played {
		require.True(t, oracle.SameMove(&got[i], &played[i]), "ply %d mismatch", i)
	}
}

func TestCompressIsDeterministic(t *testing.T) {
	start := chess.StartingPosition()
	played := uciMoves(t, start, []string{"e2e4", "e7e5"})

	a, err := CompressGame(start, played)
	require.NoError(t, err)
	b, err := CompressGame(start, played)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEncodePlyFailsOnMoveNotInLegalSet(t *testing.T) {
	start := chess.StartingPosition()
	foreign, err := oracle.DecodeUCI(start, "e2e4")
	require.NoError(t, err)
	next := oracle.Play(start, foreign)

	// foreign is legal in start, not in next.
	w := bitio.NewWriter()
	err = EncodePly(w, next, foreign)
	require.Error(t, err)
	var ccErr *chesserror.Error
	require.ErrorAs(t, err, &ccErr)
	require.Equal(t, chesserror.MoveNotFound, ccErr.Kind)
}
