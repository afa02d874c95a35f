package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildSingleDiagonalWF builds a waveFront whose row s has exactly one
// diagonal (k=0) reaching target/query offset frs[s], for exercising
// the VPC machinery without running a full wavefront fill.
func buildSingleDiagonalWF(frs []int32) *waveFront {
	wf := &waveFront{rows: make([]scoreRow, len(frs))}
	for i, fr := range frs {
		row := newScoreRow(0)
		row.cells[0] = components{M: component{fr: fr, bt: btStart}}
		wf.rows[i] = row
	}
	wf.endPenalty = uint32(len(frs) - 1)
	return wf
}

func TestPointOfMaximumQueryLengthOnSingleDiagonal(t *testing.T) {
	wf := buildSingleDiagonalWF([]int32{7})
	ql, length, idx := pointOfMaximumQueryLength(&wf.rows[0])
	assert.Equal(t, uint32(7), ql)
	assert.Equal(t, int32(7), length)
	assert.Equal(t, uint32(0), idx)
}

// fillSortedVPCVector must always leave the buffer as a Pareto frontier:
// query length strictly increasing alongside scaled penalty delta
// strictly decreasing, since a dominated point (same-or-shorter length,
// no better delta) is never worth keeping.
func assertParetoFrontier(t *testing.T, buf []vpc) {
	t.Helper()
	for i := 1; i < len(buf); i++ {
		assert.Less(t, buf[i-1].queryLength, buf[i].queryLength)
		assert.Greater(t, buf[i-1].scaledPenaltyDelta, buf[i].scaledPenaltyDelta)
	}
}

func TestFillSortedVPCVectorIsParetoFrontier(t *testing.T) {
	cases := [][]int32{
		{0, 3, 3, 7, 7, 7, 12},
		{10, 10, 10, 10},
		{1, 2, 3, 4, 5, 6},
		{20, 15, 10, 5, 0},
	}
	for _, frs := range cases {
		wf := buildSingleDiagonalWF(frs)
		var buf []vpc
		fillSortedVPCVector(wf, 50_000, &buf)
		assertParetoFrontier(t, buf)
	}
}

func TestOptimalVPCPairPrefersLongerCombinedLength(t *testing.T) {
	left := []vpc{{scaledPenaltyDelta: -100, queryLength: 5}, {scaledPenaltyDelta: 100, queryLength: 10}}
	right := []vpc{{scaledPenaltyDelta: -100, queryLength: 8}, {scaledPenaltyDelta: 100, queryLength: 20}}

	li, ri, found := optimalVPCPair(left, right, 0)
	assert.True(t, found)
	assert.Equal(t, 1, li)
	assert.Equal(t, 1, ri)
}

func TestOptimalVPCPairReportsNotFoundWhenNoPairClearsMargin(t *testing.T) {
	left := []vpc{{scaledPenaltyDelta: -1000, queryLength: 5}}
	right := []vpc{{scaledPenaltyDelta: -1000, queryLength: 8}}

	_, _, found := optimalVPCPair(left, right, 0)
	assert.False(t, found)
}
