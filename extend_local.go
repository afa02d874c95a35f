package sigalign

// localExtensionResult is the outcome of extending one anchor in local
// mode: the optimal (left, right) cut pair and the alignment it
// produces, if any pair satisfies the cutoff.
type localExtensionResult struct {
	ok             bool
	ops            Operations
	penalty        uint32
	length         uint32
	insertionCount uint32
	deletionCount  uint32
	queryStart, queryEnd   uint32
	targetStart, targetEnd uint32
	traversed      []traversedAnchor
}

// extendLocal implements C6: fill both sides far enough to build a VPC
// Pareto frontier on each, pick the (left, right) cut pair maximizing
// total length among pairs that still clear the cutoff, then backtrace
// only the chosen cut.
func extendLocal(ws *workspace, r *Regulator, a *anchor, lastPatternIndex uint32, target, query []byte) localExtensionResult {
	x, o, e := r.Penalties()
	k := r.PatternSize()
	maxPpS := r.MaxPpS()
	anchorSize := a.patternCount * k
	anchorQueryPos := a.queryPos(k)

	ws.spare.setLastPatternIndex(lastPatternIndex)

	rightSpare := ws.spare.rightSparePenalty(a.patternIndex)
	if ws.chunkCap > 0 && rightSpare > ws.chunkCap {
		rightSpare = ws.chunkCap
	}
	rightTarget := target[minU32(a.targetPos+anchorSize, uint32(len(target))):]
	rightQuery := query[minU32(anchorQueryPos+anchorSize, uint32(len(query))):]
	ws.rightWF.resetUpTo(rightSpare)
	ws.rightWF.fill(rightTarget, rightQuery, rightSpare, x, o, e)

	ws.rightVPC = ws.rightVPC[:0]
	fillSortedVPCVector(ws.rightWF, maxPpS, &ws.rightVPC)

	// The left fill has no committed right-side usage yet; bound it
	// with the spare penalty a zero right-side delta would allow. A
	// right side with a positive delta would be granted more.
	leftSpare := ws.spare.leftSparePenalty(0, a.patternIndex)
	if ws.chunkCap > 0 && leftSpare > ws.chunkCap {
		leftSpare = ws.chunkCap
	}
	leftTargetSrc := target[:a.targetPos]
	leftQuerySrc := query[:anchorQueryPos]
	revTarget := reverseInto(&ws.leftTargetScratch, leftTargetSrc)
	revQuery := reverseInto(&ws.leftQueryScratch, leftQuerySrc)
	ws.leftWF.resetUpTo(leftSpare)
	ws.leftWF.fill(revTarget, revQuery, leftSpare, x, o, e)

	ws.leftVPC = ws.leftVPC[:0]
	fillSortedVPCVector(ws.leftWF, maxPpS, &ws.leftVPC)

	anchorScaledDelta := anchorSize * maxPpS
	li, ri, found := optimalVPCPair(ws.leftVPC, ws.rightVPC, anchorScaledDelta)
	if !found {
		return localExtensionResult{}
	}

	leftCut := ws.leftVPC[li]
	rightCut := ws.rightVPC[ri]

	rightRow := &ws.rightWF.rows[rightCut.penalty]
	rightK := int32(rightCut.componentIndex) - rightRow.maxK
	rightBT := walkBackTrace(ws.rightWF, rightCut.penalty, rightK, k, a.patternCount, maxPpS, x, o, e, anchorSize)
	rightOps := rightBT.rawOps
	rightOps.reverse()
	rightLen, rightIns, rightDel := rightOps.stats()
	rightTraversed := convertTraversed(rightBT.traversed, a, true)

	leftRow := &ws.leftWF.rows[leftCut.penalty]
	leftK := int32(leftCut.componentIndex) - leftRow.maxK
	leftBT := walkBackTrace(ws.leftWF, leftCut.penalty, leftK, k, a.patternCount, maxPpS, x, o, e, anchorSize)
	leftOps := leftBT.rawOps
	leftLen, leftIns, leftDel := leftOps.stats()
	leftTraversed := convertTraversed(leftBT.traversed, a, false)

	totalPenalty := leftCut.penalty + rightCut.penalty
	totalLength := leftLen + anchorSize + rightLen

	ops := concatOperations(leftOps, Operations{{Op: Match, Count: anchorSize}}, rightOps)
	traversed := append(append([]traversedAnchor{}, leftTraversed...), rightTraversed...)

	leftQueryConsumed := leftLen - leftDel
	leftTargetConsumed := leftLen - leftIns
	rightQueryConsumed := rightLen - rightDel
	rightTargetConsumed := rightLen - rightIns

	return localExtensionResult{
		ok:             r.satisfiesCutoff(totalPenalty, totalLength),
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
