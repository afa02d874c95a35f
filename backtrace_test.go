package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkBackTraceAtStartEmitsOnlyStartMatchRun(t *testing.T) {
	wf := &waveFront{rows: make([]scoreRow, 1)}
	row := newScoreRow(0)
	row.cells[0] = components{M: component{fr: 5, bt: btStart}}
	wf.rows[0] = row

	res := walkBackTrace(wf, 0, 0, 4, 1, 50_000, 4, 6, 2, 4)
	assert.Equal(t, Operations{{Op: Match, Count: 5}}, res.rawOps)
	assert.Empty(t, res.traversed)
}

func TestWalkBackTraceEmitsMismatchThenMatches(t *testing.T) {
	wf := &waveFront{rows: make([]scoreRow, 5)}
	wf.rows[0] = newScoreRow(0)
	wf.rows[0].cells[0] = components{M: component{fr: 4, bt: btStart}}
	for s := 1; s < 4; s++ {
		wf.rows[s] = newScoreRow(0)
	}
	wf.rows[4] = newScoreRow(0)
	wf.rows[4].cells[0] = components{M: component{fr: 5, bt: btFromM}}

	res := walkBackTrace(wf, 4, 0, 4, 1, 50_000, 4, 6, 2, 4)
	assert.Equal(t, Operations{{Op: Subst, Count: 1}, {Op: Match, Count: 4}}, res.rawOps)
}
