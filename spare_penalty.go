package sigalign

// sparePenaltyCalculator precomputes, for a fixed Regulator, how much
// penalty budget each side of an anchor's extension is still allowed to
// spend while the whole alignment can still satisfy the cutoff.
//
// The right budget depends only on how many patterns lie to the right of
// the anchor, so it is tabulated once per query length. The left budget
// additionally depends on how much of that right budget the right
// extension actually used, so it is evaluated on demand.
//
// Per the originating algorithm's usage contract: construct once per
// Regulator, call growRightTable whenever a longer query raises the
// pattern count, and call setLastPatternIndex once per query before
// reading either budget.
type sparePenaltyCalculator struct {
	rightTable      []uint32
	lastPatternIdx  uint32
	rightA, rightB, rightC uint32
	leftD, leftE, leftF, leftG uint32
	minPenalty      uint32
}

func newSparePenaltyCalculator(r *Regulator, maxPatternCount uint32) *sparePenaltyCalculator {
	_, o, e := r.Penalties()
	k := r.PatternSize()
	maxPpS := r.MaxPpS()

	a := maxPpS * e * k
	b := maxPpS * (e*(3*k-2) - o)
	c := e*PrecScale - maxPpS

	d := e
	eCoef := maxPpS * e * k
	f := maxPpS * o
	g := c

	spc := &sparePenaltyCalculator{
		rightA: a, rightB: b, rightC: c,
		leftD: d, leftE: eCoef, leftF: f, leftG: g,
		minPenalty: o,
	}
	spc.growRightTable(maxPatternCount)
	return spc
}

// growRightTable extends the right-spare-penalty table up to
// maxPatternCount entries, leaving already-computed entries untouched.
func (spc *sparePenaltyCalculator) growRightTable(maxPatternCount uint32) {
	have := uint32(len(spc.rightTable))
	for reversed := have; reversed < maxPatternCount; reversed++ {
		v := (spc.rightA*reversed + spc.rightB) / spc.rightC
		if v < spc.minPenalty {
			v = spc.minPenalty
		}
		spc.rightTable = append(spc.rightTable, v)
	}
}

// setLastPatternIndex records the index of the final pattern of the
// current query; right-spare-penalty lookups are relative to it.
func (spc *sparePenaltyCalculator) setLastPatternIndex(lastPatternIndex uint32) {
	spc.lastPatternIdx = lastPatternIndex
}

// rightSparePenalty returns the penalty budget available to an
// extension starting to the right of patternIndex.
func (spc *sparePenaltyCalculator) rightSparePenalty(patternIndex uint32) uint32 {
	return spc.rightTable[spc.lastPatternIdx-patternIndex]
}

// leftSparePenalty returns the penalty budget available to an extension
// to the left of patternIndex, given rightPenaltyDelta: the right
// extension's scaled penalty delta, length*MaxPpS - penalty*PrecScale.
func (spc *sparePenaltyCalculator) leftSparePenalty(rightPenaltyDelta int32, patternIndex uint32) uint32 {
	v := (int32(spc.leftD)*rightPenaltyDelta + int32(spc.leftE)*int32(patternIndex) - int32(spc.leftF)) / int32(spc.leftG)
	if v < int32(spc.minPenalty) {
		v = int32(spc.minPenalty)
	}
	return uint32(v)
}
