package sigalign

// scoreRow holds every diagonal's M/D/I triple for one penalty value.
// Diagonal k in [-maxK, maxK] is stored at index k+maxK.
type scoreRow struct {
	maxK  int32
	cells []components
}

func newScoreRow(maxK int32) scoreRow {
	return scoreRow{maxK: maxK, cells: make([]components, 2*maxK+1)}
}

func (r *scoreRow) at(k int32) *components {
	idx := k + r.maxK
	if idx < 0 || int(idx) >= len(r.cells) {
		return nil
	}
	return &r.cells[idx]
}

func (r *scoreRow) clear() {
	for i := range r.cells {
		r.cells[i] = components{}
	}
}

// waveFront is the dropout-WFA fill buffer for one side of one
// extension. It is owned by the workspace and reused across anchors;
// callers must reset it (see resetUpTo) before every fill.
type waveFront struct {
	rows       []scoreRow
	endPenalty uint32
	endK       int32
	dropout    bool
}

// maxKForRow returns the diagonal half-width of row s under gap-affine
// penalties (o,e): no gap is reachable below o+e, and every additional e
// widens the reachable diagonal span by one.
func maxKForRow(s, o, e uint32) int32 {
	if s < o+e {
		return 0
	}
	return int32((s-(o+e))/e) + 1
}

// newWaveFront preallocates maxPenalty+1 rows, each sized for the
// widest diagonal span it could possibly need.
func newWaveFront(maxPenalty uint32, o, e uint32) *waveFront {
	rows := make([]scoreRow, maxPenalty+1)
	for s := uint32(0); s <= maxPenalty; s++ {
		rows[s] = newScoreRow(maxKForRow(s, o, e))
	}
	return &waveFront{rows: rows}
}

// resetUpTo clears every row from 0 through upTo (inclusive), the
// portion a fill bounded by spare penalty upTo will touch.
func (wf *waveFront) resetUpTo(upTo uint32) {
	if upTo >= uint32(len(wf.rows)) {
		upTo = uint32(len(wf.rows)) - 1
	}
	for s := uint32(0); s <= upTo; s++ {
		wf.rows[s].clear()
	}
	wf.dropout = false
	wf.endPenalty = 0
	wf.endK = 0
}

// fill runs the dropout-variant WFA from penalty 0 up to spare,
// extending matches forward along tgt/qry starting at offset 0. Left
// extensions are produced by calling this on reversed slices; the
// caller translates offsets back into absolute coordinates.
func (wf *waveFront) fill(tgt, qry []byte, spare uint32, x, o, e uint32) {
	if spare >= uint32(len(wf.rows)) {
		spare = uint32(len(wf.rows)) - 1
	}

	first := matchLen(tgt, qry, 0, 0)
	row0 := &wf.rows[0]
	row0.maxK = 0
	if len(row0.cells) != 1 {
		row0.cells = make([]components, 1)
	}
	row0.cells[0] = components{M: component{fr: first, bt: btStart}}

	if int(first) == len(tgt) || int(first) == len(qry) {
		wf.endPenalty, wf.endK, wf.dropout = 0, 0, false
		return
	}

	for s := uint32(1); s <= spare; s++ {
		wf.updateRow(s, x, o, e)
		if k, ok := wf.rows[s].extendToEnd(tgt, qry); ok {
			wf.endPenalty, wf.endK, wf.dropout = s, k, false
			return
		}
	}
	wf.endPenalty, wf.dropout = spare, true
}

func matchLen(tgt, qry []byte, h, v int) int32 {
	var n int32
	for h+int(n) < len(tgt) && v+int(n) < len(qry) && tgt[h+int(n)] == qry[v+int(n)] {
		n++
	}
	return n
}

// updateRow fills row s from rows s-o-e (gap open), s-e (gap extend),
// and s-x (mismatch), then raises M where D or I reach further.
func (wf *waveFront) updateRow(s, x, o, e uint32) {
	row := &wf.rows[s]
	maxK := row.maxK

	if s >= o+e {
		pre := &wf.rows[s-o-e]
		for idx := range row.cells {
			k := int32(idx) - maxK
			if preC := pre.at(k - 1); preC != nil && !preC.M.isEmpty() {
				row.cells[idx].D = component{fr: preC.M.fr + 1, insertionCount: preC.M.insertionCount, bt: btFromM}
			}
			if preC := pre.at(k + 1); preC != nil && !preC.M.isEmpty() {
				row.cells[idx].I = component{fr: preC.M.fr, insertionCount: preC.M.insertionCount + 1, bt: btFromM}
			}
		}
	}

	if s >= e {
		pre := &wf.rows[s-e]
		for idx := range row.cells {
			k := int32(idx) - maxK
			cur := &row.cells[idx]
			if preC := pre.at(k - 1); preC != nil && !preC.D.isEmpty() {
				if cur.D.isEmpty() || cur.D.fr < preC.D.fr+1 {
					cur.D = component{fr: preC.D.fr + 1, insertionCount: preC.D.insertionCount, bt: btFromD}
				}
			}
			if preC := pre.at(k + 1); preC != nil && !preC.I.isEmpty() {
				if cur.I.isEmpty() || cur.I.fr < preC.I.fr {
					cur.I = component{fr: preC.I.fr, insertionCount: preC.I.insertionCount + 1, bt: btFromI}
				}
			}
		}
	}

	if s >= x {
		pre := &wf.rows[s-x]
		for idx := range row.cells {
			k := int32(idx) - maxK
			if preC := pre.at(k); preC != nil && !preC.M.isEmpty() {
				row.cells[idx].M = component{fr: preC.M.fr + 1, insertionCount: preC.M.insertionCount, bt: btFromM}
			}
		}
	}

	for idx := range row.cells {
		cur := &row.cells[idx]
		if !cur.D.isEmpty() && (cur.M.isEmpty() || cur.D.fr >= cur.M.fr) {
			cur.M = component{fr: cur.D.fr, insertionCount: cur.D.insertionCount, bt: btFromD}
		}
		if !cur.I.isEmpty() && (cur.M.isEmpty() || cur.I.fr >= cur.M.fr) {
			cur.M = component{fr: cur.I.fr, insertionCount: cur.I.insertionCount, bt: btFromI}
		}
	}
}

// extendToEnd walks every non-empty M diagonal forward through matching
// bases; if one reaches a sequence end it returns that diagonal.
func (r *scoreRow) extendToEnd(tgt, qry []byte) (int32, bool) {
	for idx := range r.cells {
		k := int32(idx) - r.maxK
		m := &r.cells[idx].M
		if m.isEmpty() {
			continue
		}
		v := int(m.fr) - int(k)
		h := int(m.fr)
		n := matchLen(tgt, qry, h, v)
		m.fr += n
		h += int(n)
		v += int(n)
		if h == len(tgt) || v == len(qry) {
			return k, true
		}
	}
	return 0, false
}
