package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxKForRowBelowGapCostIsZero(t *testing.T) {
	assert.Equal(t, int32(0), maxKForRow(5, 6, 2))
}

func TestMaxKForRowGrowsByGapExtend(t *testing.T) {
	assert.Equal(t, int32(1), maxKForRow(8, 6, 2))
	assert.Equal(t, int32(2), maxKForRow(10, 6, 2))
}

func TestFillExactMatchReachesEndAtZeroPenalty(t *testing.T) {
	wf := newWaveFront(20, 6, 2)
	target := []byte("ACGTACGTAC")
	query := []byte("ACGTACGTAC")
	wf.fill(target, query, 20, 4, 6, 2)

	assert.False(t, wf.dropout)
	assert.Equal(t, uint32(0), wf.endPenalty)
	row := &wf.rows[0]
	comp := row.at(wf.endK)
	assert.Equal(t, int32(len(target)), comp.M.fr)
}

func TestFillSingleMismatchCostsX(t *testing.T) {
	wf := newWaveFront(20, 6, 2)
	target := []byte("ACGTACGTAC")
	query := []byte("ACGTTCGTAC")
	wf.fill(target, query, 20, 4, 6, 2)

	assert.False(t, wf.dropout)
	assert.Equal(t, uint32(4), wf.endPenalty)
}

func TestFillDropsOutWhenSpareExhausted(t *testing.T) {
	wf := newWaveFront(2, 6, 2)
	target := []byte("AAAAAAAAAA")
	query := []byte("CCCCCCCCCC")
	wf.fill(target, query, 2, 4, 6, 2)

	assert.True(t, wf.dropout)
}

func TestResetUpToClearsRowsAndEndState(t *testing.T) {
	wf := newWaveFront(20, 6, 2)
	wf.fill([]byte("ACGTACGTAC"), []byte("ACGTACGTAC"), 20, 4, 6, 2)
	assert.Equal(t, uint32(0), wf.endPenalty)

	wf.resetUpTo(20)
	for s := uint32(0); s <= 20; s++ {
		for _, c := range wf.rows[s].cells {
			assert.True(t, c.M.isEmpty())
			assert.True(t, c.D.isEmpty())
			assert.True(t, c.I.isEmpty())
		}
	}
	assert.False(t, wf.dropout)
	assert.Equal(t, uint32(0), wf.endPenalty)
	assert.Equal(t, int32(0), wf.endK)
}
