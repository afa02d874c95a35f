package sigalign

// AllocationStrategy selects how a Workspace grows its buffers when a
// query exceeds the currently allocated length.
type AllocationStrategy int

const (
	// LinearGrowth grows allocated capacity by InitialWorkspaceLength
	// at a time.
	LinearGrowth AllocationStrategy = iota
	// DoublingGrowth doubles allocated capacity each time it must grow.
	DoublingGrowth
)

// InitialWorkspaceLength is the query length a freshly built Workspace
// is sized for.
const InitialWorkspaceLength uint32 = 200

// workspace owns every buffer a single-threaded Aligner reuses across
// (query, target) pairs: the two wavefronts, VPC vectors, reversal
// scratch for left-side fills, and the spare-penalty calculator. It
// never shrinks; allocate growth is monotonic in query length.
type workspace struct {
	regulator *Regulator
	strategy  AllocationStrategy

	allocatedQueryLen uint32
	maxPenalty        uint32

	rightWF *waveFront
	leftWF  *waveFront
	spare   *sparePenaltyCalculator

	leftTargetScratch []byte
	leftQueryScratch  []byte

	leftVPC  []vpc
	rightVPC []vpc

	extensionCache []anchorExtension

	// chunkCap, when non-zero, bounds every per-side spare penalty to
	// at most this value regardless of what the closed-form budget
	// would otherwise allow (WithChunk).
	chunkCap uint32
}

// anchorExtension memoizes one anchor's extension result (either mode) so
// that an anchor visited again while walking another anchor's symbol
// does not redo the wavefront fill.
type anchorExtension struct {
	valid  bool
	result extensionOutcome
}

func newWorkspace(r *Regulator, strategy AllocationStrategy) *workspace {
	ws := &workspace{regulator: r, strategy: strategy}
	ws.ensureCapacity(InitialWorkspaceLength)
	return ws
}

// ensureCapacity grows every query-length-keyed buffer so a query of
// queryLen can be aligned without reallocating mid-extension.
func (ws *workspace) ensureCapacity(queryLen uint32) {
	if queryLen <= ws.allocatedQueryLen {
		return
	}

	newLen := ws.allocatedQueryLen
	switch ws.strategy {
	case DoublingGrowth:
		if newLen == 0 {
			newLen = InitialWorkspaceLength
		}
		for newLen < queryLen {
			newLen *= 2
		}
	default: // LinearGrowth
		for newLen < queryLen {
			newLen += InitialWorkspaceLength
		}
	}

	_, o, e := ws.regulator.Penalties()
	ws.maxPenalty = safeMaxPenalty(ws.regulator, newLen)
	ws.rightWF = newWaveFront(ws.maxPenalty, o, e)
	ws.leftWF = newWaveFront(ws.maxPenalty, o, e)

	patternCount := newLen/ws.regulator.PatternSize() + 1
	if ws.spare == nil {
		ws.spare = newSparePenaltyCalculator(ws.regulator, patternCount)
	} else {
		ws.spare.growRightTable(patternCount)
	}

	ws.allocatedQueryLen = newLen
}

// safeMaxPenalty bounds the wavefront row count needed so a query of
// length queryLen can never be dropped purely for lack of allocated
// rows.
func safeMaxPenalty(r *Regulator, queryLen uint32) uint32 {
	_, o, e := r.Penalties()
	maxPpS := r.MaxPpS()

	denom := int64(PrecScale)*int64(e) - int64(maxPpS)
	if denom <= 0 {
		return queryLen // degenerate cutoff; fall back to a safe upper bound
	}
	num := int64(maxPpS) * (int64(e)*int64(queryLen) - int64(o))
	v := num/denom + 1
	if v < int64(o) {
		v = int64(o)
	}
	if v < 0 {
		v = 0
	}
	return uint32(v)
}

func reverseInto(dst *[]byte, src []byte) []byte {
	if cap(*dst) < len(src) {
		*dst = make([]byte, len(src))
	}
	buf := (*dst)[:len(src)]
	for i, b := range src {
		buf[len(src)-1-i] = b
	}
	return buf
}
