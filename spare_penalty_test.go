package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRightSparePenaltyGrowsWithDistanceFromLastPattern(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.2)
	assert.NoError(t, err)

	spc := newSparePenaltyCalculator(r, 20)
	spc.setLastPatternIndex(10)

	far := spc.rightSparePenalty(0)
	near := spc.rightSparePenalty(9)
	assert.GreaterOrEqual(t, far, near)
}

func TestRightSparePenaltyNeverBelowGapOpen(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.2)
	assert.NoError(t, err)

	spc := newSparePenaltyCalculator(r, 5)
	spc.setLastPatternIndex(4)
	_, o, _ := r.Penalties()
	for i := uint32(0); i <= 4; i++ {
		assert.GreaterOrEqual(t, spc.rightSparePenalty(i), o)
	}
}

func TestGrowRightTableKeepsExistingEntries(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.2)
	assert.NoError(t, err)

	spc := newSparePenaltyCalculator(r, 5)
	before := append([]uint32{}, spc.rightTable...)
	spc.growRightTable(50)
	assert.Equal(t, before, spc.rightTable[:len(before)])
	assert.Len(t, spc.rightTable, 50)
}

func TestLeftSparePenaltyNeverBelowGapOpen(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.2)
	assert.NoError(t, err)

	spc := newSparePenaltyCalculator(r, 10)
	_, o, _ := r.Penalties()
	v := spc.leftSparePenalty(-1_000_000, 3)
	assert.GreaterOrEqual(t, v, o)
}

func TestLeftSparePenaltyGrowsWithPositiveRightDelta(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.2)
	assert.NoError(t, err)

	spc := newSparePenaltyCalculator(r, 10)
	small := spc.leftSparePenalty(0, 3)
	large := spc.leftSparePenalty(10_000, 3)
	assert.GreaterOrEqual(t, large, small)
}
