package sigalign

import "sort"

// Mode selects which extension algorithm the Aligner drives.
type Mode int

const (
	// SemiGlobal requires the alignment to reach an end of the query or
	// the target on both sides.
	SemiGlobal Mode = iota
	// Local allows any substring pair satisfying the cutoff.
	Local
)

// AlignerOption configures optional per-target or per-pattern penalty
// bounds beyond the regulator's own cutoff.
type AlignerOption func(*Aligner)

// WithLimit caps the number of alignments emitted per target.
func WithLimit(n uint32) AlignerOption {
	return func(a *Aligner) { a.limit = &n }
}

// WithChunk caps the spare penalty spent on either side of any single
// anchor's extension at maxPenalty, letting very long queries fail
// fast on one bad region instead of exhausting their whole closed-form
// spare-penalty budget there. chunkPatterns is accepted for forward
// compatibility with a future per-pattern-window interpretation but is
// not yet load-bearing.
func WithChunk(maxPenalty, chunkPatterns uint32) AlignerOption {
	return func(a *Aligner) {
		a.ws.chunkCap = maxPenalty
	}
}

// Reset drops the aligner's memoized extensions and wavefront contents
// without releasing the underlying allocation, so a long-lived Aligner
// can be reused across unrelated queries without carrying stale state.
func (a *Aligner) Reset() {
	a.ws.extensionCache = nil
	if a.ws.rightWF != nil {
		a.ws.rightWF.resetUpTo(a.ws.maxPenalty)
	}
	if a.ws.leftWF != nil {
		a.ws.leftWF.resetUpTo(a.ws.maxPenalty)
	}
	a.ws.leftVPC = a.ws.leftVPC[:0]
	a.ws.rightVPC = a.ws.rightVPC[:0]
}

// Aligner performs one mode of alignment against a Reference using a
// fixed Regulator. It owns a Workspace and is not safe for concurrent
// use; callers that want parallelism clone the Regulator into one
// Aligner per goroutine (see NewAligner).
type Aligner struct {
	regulator *Regulator
	mode      Mode
	ws        *workspace
	limit     *uint32
}

// NewAligner builds an Aligner for regulator in the given mode, with
// its Workspace growing according to strategy.
func NewAligner(regulator *Regulator, mode Mode, strategy AllocationStrategy, opts ...AlignerOption) *Aligner {
	a := &Aligner{
		regulator: regulator,
		mode:      mode,
		ws:        newWorkspace(regulator, strategy),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Position is a half-open, zero-based span in unscaled coordinates.
type Position struct {
	Start, End uint32
}

// Alignment is one reported alignment against a single target.
type Alignment struct {
	Penalty    uint32
	Length     uint32
	QueryPos   Position
	TargetPos  Position
	Operations Operations
}

// TargetAlignment collects every alignment found against one target.
// Label is populated from the Reference's optional Label hook when one
// is attached via WithLabels, and left empty otherwise.
type TargetAlignment struct {
	Index      uint32
	Label      string
	Alignments []Alignment
}

// AlignmentResult is the full output of one Align call: one entry per
// target that produced at least one alignment.
type AlignmentResult []TargetAlignment

// extensionOutcome is the mode-agnostic shape both extendSemiGlobal and
// extendLocal results are adapted into, so the orchestrator below does
// not need to branch on mode past the single dispatch call.
type extensionOutcome struct {
	ok                     bool
	dropout                bool
	ops                    Operations
	penalty, length        uint32
	insertionCount         uint32
	deletionCount          uint32
	queryStart, queryEnd   uint32
	targetStart, targetEnd uint32
	traversed              []traversedAnchor
}

func fromSemiGlobal(r semiGlobalResult) extensionOutcome {
	return extensionOutcome{
		ok: r.ok, dropout: r.rightDropout || r.leftDropout,
		ops: r.ops, penalty: r.penalty, length: r.length,
		insertionCount: r.insertionCount, deletionCount: r.deletionCount,
		queryStart: r.queryStart, queryEnd: r.queryEnd,
		targetStart: r.targetStart, targetEnd: r.targetEnd,
		traversed: r.traversed,
	}
}

func fromLocal(r localExtensionResult) extensionOutcome {
	return extensionOutcome{
		ok: r.ok, ops: r.ops, penalty: r.penalty, length: r.length,
		insertionCount: r.insertionCount, deletionCount: r.deletionCount,
		queryStart: r.queryStart, queryEnd: r.queryEnd,
		targetStart: r.targetStart, targetEnd: r.targetEnd,
		traversed: r.traversed,
	}
}

// Align finds every alignment of query against reference's targets
// satisfying the aligner's mode and regulator.
func (a *Aligner) Align(query []byte, reference *Reference) (AlignmentResult, error) {
	if len(query) == 0 {
		return nil, ErrEmptyQuery
	}
	if v, ok := reference.Locator.(QueryValidator); ok && !v.ValidQuery(query) {
		return nil, ErrUnsupportedQuery
	}

	patternSize := a.regulator.PatternSize()
	a.ws.ensureCapacity(uint32(len(query)))

	targetIndices := reference.sortedTargetIndices()
	tables := buildAnchorTables(reference.Locator, query, targetIndices, patternSize)

	var result AlignmentResult
	buf := reference.Storage.GetBuffer()

	sortedTargets := make([]uint32, 0, len(tables))
	for idx := range tables {
		sortedTargets = append(sortedTargets, idx)
	}
	sort.Slice(sortedTargets, func(i, j int) bool { return sortedTargets[i] < sortedTargets[j] })

	for _, targetIndex := range sortedTargets {
		table := tables[targetIndex]
		if len(table.anchors) == 0 {
			continue
		}
		reference.Storage.FillBuffer(targetIndex, buf)
		target := buf.RequestedSequence()

		alignments := a.alignAgainstTarget(table, query, target)
		if len(alignments) == 0 {
			continue
		}
		if a.limit != nil && uint32(len(alignments)) > *a.limit {
			alignments = alignments[:*a.limit]
		}
		ta := TargetAlignment{Index: targetIndex, Alignments: alignments}
		if reference.Labels != nil {
			ta.Label = reference.Labels.LabelOf(targetIndex)
		}
		result = append(result, ta)
	}

	return result, nil
}

type candidate struct {
	symbolAnchors []int
	outcome       extensionOutcome
}

// alignAgainstTarget runs the orchestrator (C7) for a single target:
// it dispatches each unregistered anchor to the mode's extension,
// deduplicates overlapping anchor chains, and returns the surviving
// alignments in the mode's canonical order.
func (a *Aligner) alignAgainstTarget(table *anchorTable, query, target []byte) []Alignment {
	anchors := table.anchors
	n := len(anchors)
	if n == 0 {
		return nil
	}
	// The right spare-penalty budget is keyed to how many patterns of
	// the whole query lie to the right of an anchor, not to the last
	// anchor actually found -- a query whose matches stop short of its
	// 3' end must still budget against the patterns beyond them.
	lastPatternIndex := uint32(len(query))/a.regulator.PatternSize() - 1

	index := make(map[[2]uint32]int, n)
	for i, an := range anchors {
		index[[2]uint32{an.patternIndex, an.targetPos}] = i
	}

	registered := make([]bool, n)
	included := make([]bool, n)
	a.ws.extensionCache = make([]anchorExtension, n)

	var candidates []candidate

	for i := range anchors {
		if registered[i] {
			continue
		}
		out := a.extend(&anchors[i], i, lastPatternIndex, target, query)
		registered[i] = true
		if !out.ok {
			continue
		}

		symbol := []int{i}
		for _, t := range out.traversed {
			if j, ok := index[[2]uint32{t.addtPatternIndex, t.addtTargetPosition}]; ok && !t.toSkip {
				symbol = append(symbol, j)
			}
		}
		for _, j := range symbol {
			registered[j] = true
		}

		candidates = append(candidates, candidate{symbolAnchors: symbol, outcome: out})
	}

	if a.mode == Local {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].outcome.length != candidates[j].outcome.length {
				return candidates[i].outcome.length > candidates[j].outcome.length
			}
			return candidates[i].outcome.penalty < candidates[j].outcome.penalty
		})
	} else {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].outcome.penalty < candidates[j].outcome.penalty
		})
	}

	var out []Alignment
	for _, c := range candidates {
		alreadyIncluded := false
		for _, j := range c.symbolAnchors {
			if included[j] {
				alreadyIncluded = true
				break
			}
		}
		if alreadyIncluded {
			continue
		}
		for _, j := range c.symbolAnchors {
			included[j] = true
		}

		out = append(out, Alignment{
			Penalty:    a.regulator.inflate(c.outcome.penalty),
			Length:     c.outcome.length,
			QueryPos:   Position{Start: c.outcome.queryStart, End: c.outcome.queryEnd},
			TargetPos:  Position{Start: c.outcome.targetStart, End: c.outcome.targetEnd},
			Operations: c.outcome.ops,
		})
	}
	return out
}

// extend runs the mode's extension for anchor index i, memoizing the
// result so revisiting i while walking another anchor's symbol is free.
func (a *Aligner) extend(an *anchor, i int, lastPatternIndex uint32, target, query []byte) extensionOutcome {
	if a.ws.extensionCache[i].valid {
		return a.ws.extensionCache[i].result
	}
	var out extensionOutcome
	if a.mode == Local {
		out = fromLocal(extendLocal(a.ws, a.regulator, an, lastPatternIndex, target, query))
	} else {
		out = fromSemiGlobal(extendSemiGlobal(a.ws, a.regulator, an, lastPatternIndex, target, query))
	}
	a.ws.extensionCache[i] = anchorExtension{valid: true, result: out}
	return out
}
