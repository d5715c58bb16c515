package moveorder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderRanksCapturesAndPromotionsFirst(t *testing.T) {
	quiet := Candidate{Role: Pawn, To: 20, From: 12, WhiteToMove: true}
	capture := Candidate{Role: Pawn, To: 21, From: 12, IsCapture: true, WhiteToMove: true}
	promotion := Candidate{Role: Pawn, To: 60, From: 52, PromotionRole: 5, IsCapture: true, WhiteToMove: true}

	order := Order([]Candidate{quiet, capture, promotion})

	// Ascending K(m) == descending composite score: promotion first,
	// plain capture next, quiet move last.
	require.Equal(t, []int{2, 1, 0}, order)
}

func TestOrderIsDeterministic(t *testing.T) {
	cs := []Candidate{
		{Role: Knight, To: 18, From: 1, WhiteToMove: true},
		{Role: Bishop, To: 26, From: 5, WhiteToMove: true},
		{Role: Pawn, To: 28, From: 12, WhiteToMove: true, DefendingPawns: 1 << 21},
	}
	first := Order(cs)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Order(cs))
	}
}

func TestDefendingPawnsLowersScore(t *testing.T) {
	undefended := Candidate{Role: Queen, To: 28, From: 3, WhiteToMove: true}
	defended := Candidate{Role: Queen, To: 28, From: 3, WhiteToMove: true, DefendingPawns: 1 << 35}

	// A defended destination square must get a lower composite score,
	// i.e. a higher K(m) from score(), and so sort later than the same
	// move into an undefended square.
	require.Less(t, score(undefended), score(defended))
}
