package sigalign

// semiGlobalResult is the outcome of extending one anchor to either
// sequence's end in both directions.
type semiGlobalResult struct {
	ok              bool
	rightDropout    bool
	leftDropout     bool
	ops             Operations
	penalty         uint32
	length          uint32
	insertionCount  uint32
	deletionCount   uint32
	queryStart, queryEnd   uint32
	targetStart, targetEnd uint32
	traversed       []traversedAnchor
}

// extendSemiGlobal implements C5: right fill then left fill bounded by
// the spare-penalty budget, backtrace on both sides, and concatenation
// into one candidate alignment anchored at anchor's own match run.
func extendSemiGlobal(ws *workspace, r *Regulator, a *anchor, lastPatternIndex uint32, target, query []byte) semiGlobalResult {
	x, o, e := r.Penalties()
	k := r.PatternSize()
	maxPpS := r.MaxPpS()
	anchorSize := a.patternCount * k
	anchorQueryPos := a.queryPos(k)

	ws.spare.setLastPatternIndex(lastPatternIndex)

	// Right side.
	rightSpare := ws.spare.rightSparePenalty(a.patternIndex)
	if ws.chunkCap > 0 && rightSpare > ws.chunkCap {
		rightSpare = ws.chunkCap
	}
	rightTarget := target[minU32(a.targetPos+anchorSize, uint32(len(target))):]
	rightQuery := query[minU32(anchorQueryPos+anchorSize, uint32(len(query))):]
	ws.rightWF.resetUpTo(rightSpare)
	ws.rightWF.fill(rightTarget, rightQuery, rightSpare, x, o, e)
	if ws.rightWF.dropout {
		return semiGlobalResult{rightDropout: true}
	}

	rightBT := walkBackTrace(ws.rightWF, ws.rightWF.endPenalty, ws.rightWF.endK, k, a.patternCount, maxPpS, x, o, e, anchorSize)
	rightOps := rightBT.rawOps
	rightOps.reverse()
	rightPenalty := ws.rightWF.endPenalty
	rightLen, rightIns, rightDel := rightOps.stats()
	rightTraversed := convertTraversed(rightBT.traversed, a, true)

	// Left side.
	deltaR := int32(rightLen)*int32(maxPpS) - int32(rightPenalty)*int32(PrecScale)
	leftSpare := ws.spare.leftSparePenalty(deltaR, a.patternIndex)
	if ws.chunkCap > 0 && leftSpare > ws.chunkCap {
		leftSpare = ws.chunkCap
	}

	leftTargetSrc := target[:a.targetPos]
	leftQuerySrc := query[:anchorQueryPos]
	revTarget := reverseInto(&ws.leftTargetScratch, leftTargetSrc)
	revQuery := reverseInto(&ws.leftQueryScratch, leftQuerySrc)

	ws.leftWF.resetUpTo(leftSpare)
	ws.leftWF.fill(revTarget, revQuery, leftSpare, x, o, e)
	if ws.leftWF.dropout {
		return semiGlobalResult{leftDropout: true}
	}

	leftBT := walkBackTrace(ws.leftWF, ws.leftWF.endPenalty, ws.leftWF.endK, k, a.patternCount, maxPpS, x, o, e, anchorSize)
	leftOps := leftBT.rawOps // already far-to-anchor, the correct final order for the left side
	leftPenalty := ws.leftWF.endPenalty
	leftLen, leftIns, leftDel := leftOps.stats()
	leftTraversed := convertTraversed(leftBT.traversed, a, false)

	totalPenalty := leftPenalty + rightPenalty
	totalLength := leftLen + anchorSize + rightLen

	ops := concatOperations(leftOps, Operations{{Op: Match, Count: anchorSize}}, rightOps)

	ok := r.satisfiesCutoff(totalPenalty, totalLength)

	traversed := append(append([]traversedAnchor{}, leftTraversed...), rightTraversed...)

	leftQueryConsumed := leftLen - leftDel
	leftTargetConsumed := leftLen - leftIns
	rightQueryConsumed := rightLen - rightDel
	rightTargetConsumed := rightLen - rightIns

	return semiGlobalResult{
		ok:             ok,
		ops:            ops,
		penalty:        totalPenalty,
		length:         totalLength,
		insertionCount: leftIns + rightIns,
		deletionCount:  leftDel + rightDel,
		queryStart:     anchorQueryPos - leftQueryConsumed,
		queryEnd:       anchorQueryPos + anchorSize + rightQueryConsumed,
		targetStart:    a.targetPos - leftTargetConsumed,
		targetEnd:      a.targetPos + anchorSize + rightTargetConsumed,
		traversed:      traversed,
	}
}

// convertTraversed maps walkBackTrace's anchor-relative local offsets
// into absolute (patternIndex, targetPosition) coordinates. The walk
// always reports offsets growing away from the anchor in the direction
// it was run; for the right side that means addition, for the left
// side (run on reversed slices) it means subtraction.
func convertTraversed(in []traversedAnchor, a *anchor, right bool) []traversedAnchor {
	if len(in) == 0 {
		return nil
	}
	out := make([]traversedAnchor, len(in))
	for i, t := range in {
		out[i] = t
		if right {
			out[i].addtPatternIndex = a.patternIndex + t.addtPatternIndex
			out[i].addtTargetPosition = a.targetPos + t.addtTargetPosition
		} else {
			out[i].addtPatternIndex = subU32(a.patternIndex, t.addtPatternIndex)
			out[i].addtTargetPosition = subU32(a.targetPos, t.addtTargetPosition)
		}
	}
	return out
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func subU32(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
