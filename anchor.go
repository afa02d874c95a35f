package sigalign

import "sort"

// PatternLocation is one pattern's exact matches inside a single target,
// as reported by a PatternLocator.
type PatternLocation struct {
	TargetIndex     uint32
	SortedPositions []uint32
}

// PatternLocator resolves exact k-mer patterns to their positions inside
// a set of candidate targets. Implementations typically wrap an FM-index,
// a suffix array, or a k-mer hash table built over the target database;
// sigalign treats the locator as an external collaborator and only
// depends on this interface.
type PatternLocator interface {
	// Locate returns, for each target in targetIndices that contains at
	// least one exact occurrence of pattern, its sorted match positions.
	Locate(pattern []byte, targetIndices []uint32) []PatternLocation
}

// QueryValidator is an optional capability a PatternLocator implements
// when its index alphabet cannot represent every byte value, e.g. an
// FM-index built only over {A,C,G,T}. Align calls ValidQuery once
// before seeding any anchors and fails fast with ErrUnsupportedQuery
// rather than silently returning zero matches for every pattern.
type QueryValidator interface {
	ValidQuery(query []byte) bool
}

// anchor is one candidate alignment start point: a run of one or more
// adjacent, ungapped pattern matches against a single target.
type anchor struct {
	patternIndex uint32 // index, within the query, of the leftmost pattern
	targetPos    uint32 // leftmost target position of the run
	patternCount uint32 // number of patterns folded into this anchor
}

// queryPos returns the anchor's leftmost position within the query.
func (a *anchor) queryPos(patternSize uint32) uint32 {
	return a.patternIndex * patternSize
}

// anchorTable holds every anchor found against one target, ordered by
// pattern index and then by target position -- the iteration order the
// orchestrator (C7) requires.
type anchorTable struct {
	anchors []anchor
}

// buildAnchorTables locates every pattern of query in each of
// targetIndices and returns one anchorTable per target that had at
// least one match, keyed by target index.
func buildAnchorTables(locator PatternLocator, query []byte, targetIndices []uint32, patternSize uint32) map[uint32]*anchorTable {
	patternCount := uint32(len(query)) / patternSize
	byTarget := make(map[uint32][][]anchor, len(targetIndices))

	for patternIndex := uint32(0); patternIndex < patternCount; patternIndex++ {
		start := patternIndex * patternSize
		pattern := query[start : start+patternSize]

		locations := locator.Locate(pattern, targetIndices)
		for _, loc := range locations {
			slots, ok := byTarget[loc.TargetIndex]
			if !ok {
				slots = make([][]anchor, patternCount)
				byTarget[loc.TargetIndex] = slots
			}
			slots[patternIndex] = newAnchorRun(patternIndex, loc.SortedPositions)
		}
	}

	result := make(map[uint32]*anchorTable, len(byTarget))
	for targetIndex, slots := range byTarget {
		mergeUngappedAnchors(slots, patternSize)
		result[targetIndex] = &anchorTable{anchors: flattenAnchorSlots(slots)}
	}
	return result
}

func newAnchorRun(patternIndex uint32, sortedPositions []uint32) []anchor {
	out := make([]anchor, len(sortedPositions))
	for i, pos := range sortedPositions {
		out[i] = anchor{
			patternIndex: patternIndex,
			targetPos:    pos,
			patternCount: 1,
		}
	}
	return out
}

// mergeUngappedAnchors folds every anchor run into its immediate left
// neighbor whenever the two are perfectly adjacent on the target, i.e.
// left.targetPos + patternSize*left.patternCount == right.targetPos.
// Iterating right to left lets a chain of N adjacent patterns collapse
// into a single anchor in one pass.
func mergeUngappedAnchors(slots [][]anchor, patternSize uint32) {
	for rightIdx := len(slots) - 1; rightIdx > 0; rightIdx-- {
		left := &slots[rightIdx-1]
		right := &slots[rightIdx]
		if len(*left) == 0 || len(*right) == 0 {
			continue
		}

		li, ri := 0, 0
		merged := (*right)[:0]
		for li < len(*left) && ri < len(*right) {
			leftAnchor := &(*left)[li]
			rightAnchor := (*right)[ri]

			leftEnd := leftAnchor.targetPos + patternSize*leftAnchor.patternCount
			switch {
			case leftEnd == rightAnchor.targetPos:
				leftAnchor.patternCount += rightAnchor.patternCount
				li++
				ri++
			case leftEnd < rightAnchor.targetPos:
				li++
			default:
				merged = append(merged, rightAnchor)
				ri++
			}
		}
		merged = append(merged, (*right)[ri:]...)
		*right = merged
	}
}

// traversedAnchor is an anchor the reconstructed path of some other
// anchor's extension crosses. addtPatternIndex/addtTargetPosition are
// expressed relative to the extension's own anchor, already offset by
// its pattern count / target size so they land on the absolute anchor
// table coordinates of the crossed anchor.
type traversedAnchor struct {
	addtPatternIndex   uint32
	addtTargetPosition uint32
	cumPenaltyDelta    int32
	toSkip             bool
}

func flattenAnchorSlots(slots [][]anchor) []anchor {
	total := 0
	for _, s := range slots {
		total += len(s)
	}
	out := make([]anchor, 0, total)
	for _, s := range slots {
		out = append(out, s...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].patternIndex != out[j].patternIndex {
			return out[i].patternIndex < out[j].patternIndex
		}
		return out[i].targetPos < out[j].targetPos
	})
	return out
}
