package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubLocator answers Locate from a fixed map of pattern -> positions,
// so anchor-table tests do not depend on any real index implementation.
type stubLocator struct {
	positions map[string][]uint32
}

func (s *stubLocator) Locate(pattern []byte, targetIndices []uint32) []PatternLocation {
	positions, ok := s.positions[string(pattern)]
	if !ok {
		return nil
	}
	return []PatternLocation{{TargetIndex: 0, SortedPositions: positions}}
}

func TestBuildAnchorTablesMergesAdjacentPatterns(t *testing.T) {
	const k = 4
	// Query splits into three patterns of length 4: "AAAA" "CCCC" "GGGG",
	// each occurring once in the target, perfectly adjacent.
	locator := &stubLocator{positions: map[string][]uint32{
		"AAAA": {0},
		"CCCC": {4},
		"GGGG": {8},
	}}
	query := []byte("AAAACCCCGGGG")
	tables := buildAnchorTables(locator, query, []uint32{0}, k)

	table, ok := tables[0]
	assert.True(t, ok)
	assert.Len(t, table.anchors, 1)
	assert.Equal(t, uint32(0), table.anchors[0].patternIndex)
	assert.Equal(t, uint32(0), table.anchors[0].targetPos)
	assert.Equal(t, uint32(3), table.anchors[0].patternCount)
}

func TestBuildAnchorTablesKeepsNonAdjacentPatternsSeparate(t *testing.T) {
	const k = 4
	locator := &stubLocator{positions: map[string][]uint32{
		"AAAA": {0},
		"CCCC": {20}, // far from the first pattern's end (4), no merge
	}}
	query := []byte("AAAACCCC")
	tables := buildAnchorTables(locator, query, []uint32{0}, k)

	table := tables[0]
	assert.Len(t, table.anchors, 2)
	assert.Equal(t, uint32(1), table.anchors[0].patternCount)
	assert.Equal(t, uint32(1), table.anchors[1].patternCount)
}

func TestBuildAnchorTablesSkipsTargetsWithNoMatches(t *testing.T) {
	const k = 4
	locator := &stubLocator{positions: map[string][]uint32{}}
	query := []byte("AAAACCCC")
	tables := buildAnchorTables(locator, query, []uint32{0}, k)
	assert.Empty(t, tables)
}

func TestAnchorQueryPos(t *testing.T) {
	a := anchor{patternIndex: 3}
	assert.Equal(t, uint32(12), a.queryPos(4))
}
