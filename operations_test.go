package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationsAddMergesSameKindRuns(t *testing.T) {
	var ops Operations
	ops.add(Match, 3)
	ops.add(Match, 2)
	ops.add(Subst, 1)
	assert.Equal(t, Operations{{Op: Match, Count: 5}, {Op: Subst, Count: 1}}, ops)
}

func TestOperationsAddSkipsZeroCount(t *testing.T) {
	var ops Operations
	ops.add(Match, 0)
	assert.Empty(t, ops)
}

func TestOperationsReverse(t *testing.T) {
	ops := Operations{{Op: Match, Count: 3}, {Op: Insertion, Count: 1}, {Op: Match, Count: 2}}
	ops.reverse()
	assert.Equal(t, Operations{{Op: Match, Count: 2}, {Op: Insertion, Count: 1}, {Op: Match, Count: 3}}, ops)
}

func TestConcatOperationsMergesBoundary(t *testing.T) {
	left := Operations{{Op: Match, Count: 3}}
	mid := Operations{{Op: Match, Count: 2}}
	right := Operations{{Op: Deletion, Count: 1}}
	got := concatOperations(left, mid, right)
	assert.Equal(t, Operations{{Op: Match, Count: 5}, {Op: Deletion, Count: 1}}, got)
}

func TestOperationsStats(t *testing.T) {
	ops := Operations{
		{Op: Match, Count: 5},
		{Op: Insertion, Count: 2},
		{Op: Deletion, Count: 1},
		{Op: Subst, Count: 3},
	}
	length, ins, del := ops.stats()
	assert.Equal(t, uint32(11), length)
	assert.Equal(t, uint32(2), ins)
	assert.Equal(t, uint32(1), del)
}

func TestOperationByte(t *testing.T) {
	assert.Equal(t, byte('='), Match.Byte())
	assert.Equal(t, byte('X'), Subst.Byte())
	assert.Equal(t, byte('I'), Insertion.Byte())
	assert.Equal(t, byte('D'), Deletion.Byte())
}
