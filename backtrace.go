package sigalign

// componentKind names which of a diagonal's three layers a backtrace
// step currently occupies.
type componentKind uint8

const (
	ckM componentKind = iota
	ckD
	ckI
)

// backtraceResult is the raw output of walkBackTrace: operations in
// far-to-near order (the order they were produced while walking from
// the wavefront's end point back toward its penalty-0 start), plus any
// anchors the path crossed along the way.
type backtraceResult struct {
	rawOps     Operations
	traversed  []traversedAnchor
}

// walkBackTrace reconstructs one side of an extension by following
// back-trace markers from (startPenalty, startK) in the M layer back to
// the wavefront's start point, accumulating both the edit script and
// any anchors the path traverses.
//
// anchorSize and patternCountOfAnchor describe the anchor the
// wavefront was extended from; maxPpS is the regulator's scaled
// cutoff. The asymmetry between the mismatch branch (which reads the
// pre-transition penalty via penalty+x) and the gap branches (which
// read the post-transition penalty directly) is intentional -- it
// reflects whether the traversed block ends at a mismatch column or
// inside a gap.
func walkBackTrace(wf *waveFront, startPenalty uint32, startK int32, patternSize, patternCountOfAnchor uint32, maxPpS, x, o, e, anchorSize uint32) backtraceResult {
	var res backtraceResult

	penalty := startPenalty
	k := startK
	row := &wf.rows[penalty]
	kind := ckM
	comp := *row.at(k)
	fr := comp.M.fr

	var pdToPrevious int32

	applyTraversal := func(pdToThis int32, cur component) {
		pdBetween := pdToPrevious - pdToThis
		for i := range res.traversed {
			res.traversed[i].cumPenaltyDelta += pdBetween
			if res.traversed[i].cumPenaltyDelta > 0 {
				res.traversed[i].toSkip = true
			}
		}
		pdToPrevious = pdToThis
	}

	for {
		switch kind {
		case ckM:
			switch comp.M.bt {
			case btFromM:
				penalty -= x
				row = &wf.rows[penalty]
				next := row.at(k).M
				nextFr := next.fr

				matchCount := fr - nextFr - 1
				lengthToTwoBaseBefore := nextFr - k
				quotient := lengthToTwoBaseBefore / int32(patternSize)
				remainder := lengthToTwoBaseBefore % int32(patternSize)
				assumed := matchCount + remainder + 1 - int32(patternSize)
				if assumed >= int32(patternSize) {
					pdToThis := int32(maxPpS)*(nextFr+int32(next.insertionCount)+1) - int32(penalty+x)*int32(PrecScale)
					applyTraversal(pdToThis, next)
					res.traversed = append(res.traversed, traversedAnchor{
						addtPatternIndex:   uint32(quotient+1) + patternCountOfAnchor,
						addtTargetPosition: uint32(fr-assumed) + anchorSize,
					})
				}

				res.rawOps.add(Match, uint32(matchCount))
				res.rawOps.add(Subst, 1)
				fr = nextFr
				comp = components{M: next}
			case btFromD:
				kind = ckD
				next := row.at(k).D
				nextFr := next.fr

				matchCount := fr - nextFr
				lengthToTwoBaseBefore := nextFr - k - 1
				quotient := lengthToTwoBaseBefore / int32(patternSize)
				remainder := lengthToTwoBaseBefore % int32(patternSize)
				assumed := matchCount + remainder + 1 - int32(patternSize)
				if assumed >= int32(patternSize) {
					pdToThis := int32(maxPpS)*(nextFr+int32(next.insertionCount)) - int32(penalty)*int32(PrecScale)
					applyTraversal(pdToThis, next)
					res.traversed = append(res.traversed, traversedAnchor{
						addtPatternIndex:   uint32(quotient+1) + patternCountOfAnchor,
						addtTargetPosition: uint32(fr-assumed) + anchorSize,
					})
				}

				res.rawOps.add(Match, uint32(matchCount))
				fr = nextFr
				comp = components{D: next}
			case btFromI:
				kind = ckI
				next := row.at(k).I
				nextFr := next.fr

				matchCount := fr - nextFr
				lengthToTwoBaseBefore := nextFr - k - 1
				quotient := lengthToTwoBaseBefore / int32(patternSize)
				remainder := lengthToTwoBaseBefore % int32(patternSize)
				assumed := matchCount + remainder + 1 - int32(patternSize)
				if assumed >= int32(patternSize) {
					pdToThis := int32(maxPpS)*(nextFr+int32(next.insertionCount)) - int32(penalty)*int32(PrecScale)
					applyTraversal(pdToThis, next)
					res.traversed = append(res.traversed, traversedAnchor{
						addtPatternIndex:   uint32(quotient+1) + patternCountOfAnchor,
						addtTargetPosition: uint32(fr-assumed) + anchorSize,
					})
				}

				res.rawOps.add(Match, uint32(matchCount))
				fr = nextFr
				comp = components{I: next}
			default: // btStart
				res.rawOps.add(Match, uint32(fr))
				pdBetween := pdToPrevious + int32(anchorSize)*int32(maxPpS)
				for i := range res.traversed {
					res.traversed[i].cumPenaltyDelta += pdBetween
					if res.traversed[i].cumPenaltyDelta > 0 {
						res.traversed[i].toSkip = true
					}
				}
				return res
			}
		case ckD:
			if comp.D.bt == btFromM {
				penalty -= o + e
				k--
				row = &wf.rows[penalty]
				kind = ckM
				next := row.at(k).M
				fr = next.fr
				comp = components{M: next}
				res.rawOps.add(Deletion, 1)
			} else {
				penalty -= e
				k--
				row = &wf.rows[penalty]
				next := row.at(k).D
				fr = next.fr
				comp = components{D: next}
				res.rawOps.add(Deletion, 1)
			}
		case ckI:
			if comp.I.bt == btFromM {
				penalty -= o + e
				k++
				row = &wf.rows[penalty]
				kind = ckM
				next := row.at(k).M
				fr = next.fr
				comp = components{M: next}
				res.rawOps.add(Insertion, 1)
			} else {
				penalty -= e
				k++
				row = &wf.rows[penalty]
				next := row.at(k).I
				fr = next.fr
				comp = components{I: next}
				res.rawOps.add(Insertion, 1)
			}
		}
	}
}
