package dive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUnroundableBeatsRoundable(t *testing.T) {
	m := newMockRelax(2)
	m.binary[0] = true // Gives the roundable candidate a huge quotient.
	cands := []Candidate{
		{Var: 0, Value: 0.5, Frac: 0.5, MayRoundDown: true, MayRoundUp: true},
		{Var: 1, Value: 3.5, Frac: 0.5},
	}
	sel, ok := selectCandidate(m, cands, make([]roundMark, 2))
	require.True(t, ok)
	assert.Equal(t, 1, sel.cand.Var)
	assert.False(t, sel.allRoundable)
}

func TestSelectBestRoundableByQuotient(t *testing.T) {
	m := newMockRelax(2)
	m.rootVals = []float64{1.2, 2.5}
	m.pscostUp[1] = 9.0 // Makes rounding down on x1 very attractive.
	cands := []Candidate{
		{Var: 0, Value: 1.2, Frac: 0.2, MayRoundDown: true, MayRoundUp: true},
		{Var: 1, Value: 2.5, Frac: 0.5, MayRoundDown: true, MayRoundUp: true},
	}
	sel, ok := selectCandidate(m, cands, make([]roundMark, 2))
	require.True(t, ok)
	assert.Equal(t, 1, sel.cand.Var)
	assert.Equal(t, Down, sel.dir)
	assert.True(t, sel.allRoundable)
}

func TestSelectForcesInfeasibleDirection(t *testing.T) {
	// A one-way roundable candidate is dived into the direction rounding
	// cannot reach: the feasible direction is what tryRound will use.
	m := newMockRelax(1)
	sel, ok := selectCandidate(m, []Candidate{
		{Var: 0, Value: 1.2, Frac: 0.2, MayRoundDown: true},
	}, make([]roundMark, 1))
	require.True(t, ok)
	assert.Equal(t, Up, sel.dir)

	sel, ok = selectCandidate(m, []Candidate{
		{Var: 0, Value: 1.8, Frac: 0.8, MayRoundUp: true},
	}, make([]roundMark, 1))
	require.True(t, ok)
	assert.Equal(t, Down, sel.dir)
}

func TestSelectMarkedBonus(t *testing.T) {
	m := newMockRelax(2)
	m.rootVals = []float64{2.5, 3.5}
	m.pscostUp[0] = 9.0 // x0 has the larger base quotient.
	cands := []Candidate{
		{Var: 0, Value: 2.5, Frac: 0.5},
		{Var: 1, Value: 3.5, Frac: 0.5},
	}
	marks := make([]roundMark, 2)
	sel, ok := selectCandidate(m, cands, marks)
	require.True(t, ok)
	require.Equal(t, 0, sel.cand.Var)

	// Once x1 carries a soft-rounding mark, finishing it comes first.
	marks[1] = markedUp
	sel, ok = selectCandidate(m, cands, marks)
	require.True(t, ok)
	assert.Equal(t, 1, sel.cand.Var)
}

func TestSelectBonusOrderIsImmaterial(t *testing.T) {
	// The binary bonus is applied inside the estimator and the
	// already-rounded bonus at the selection site, so their relative
	// order differs between the roundable and unroundable partitions.
	// Both are plain multiplications, so the ranking cannot depend on
	// the partition. Documented quirk, not a bug.
	m := newMockRelax(2)
	m.binary[0] = true
	m.binary[1] = true
	m.pscostDown[0] = 4.0 // x0's base quotient is larger, but less than 1000x.
	marks := make([]roundMark, 2)
	marks[1] = markedUp

	for _, roundable := range []bool{true, false} {
		cands := []Candidate{
			{Var: 0, Value: 0.5, Frac: 0.5, MayRoundDown: roundable, MayRoundUp: roundable},
			{Var: 1, Value: 0.5, Frac: 0.5, MayRoundDown: roundable, MayRoundUp: roundable},
		}
		sel, ok := selectCandidate(m, cands, marks)
		require.True(t, ok)
		assert.Equal(t, 1, sel.cand.Var, "roundable=%v", roundable)
	}
}

func TestSelectEmptyPool(t *testing.T) {
	m := newMockRelax(1)
	_, ok := selectCandidate(m, nil, make([]roundMark, 1))
	assert.False(t, ok)
}

func TestSelectAllRoundableFlag(t *testing.T) {
	m := newMockRelax(2)
	mixed := []Candidate{
		{Var: 0, Value: 0.5, Frac: 0.5, MayRoundDown: true, MayRoundUp: true},
		{Var: 1, Value: 3.5, Frac: 0.5},
	}
	sel, ok := selectCandidate(m, mixed, make([]roundMark, 2))
	require.True(t, ok)
	assert.False(t, sel.allRoundable)

	rounded := []Candidate{
		{Var: 0, Value: 0.5, Frac: 0.5, MayRoundDown: true, MayRoundUp: true},
		{Var: 1, Value: 3.5, Frac: 0.5, MayRoundDown: true},
	}
	sel, ok = selectCandidate(m, rounded, make([]roundMark, 2))
	require.True(t, ok)
	assert.True(t, sel.allRoundable)
}
