package sigalign

// Operation is one alignment edit kind.
type Operation byte

const (
	// Match means the query and target bases are equal.
	Match Operation = iota
	// Subst means the query and target bases differ (a mismatch).
	Subst
	// Insertion means a query base is not present in the target.
	Insertion
	// Deletion means a target base is not present in the query.
	Deletion
)

// Byte returns the CIGAR-equivalent symbol consumers conventionally use:
// '=' for Match, 'X' for Subst, 'I' for Insertion, 'D' for Deletion.
func (op Operation) Byte() byte {
	switch op {
	case Match:
		return '='
	case Subst:
		return 'X'
	case Insertion:
		return 'I'
	case Deletion:
		return 'D'
	default:
		return '?'
	}
}

// OperationRun is a run-length encoded edit: Count consecutive Op's.
type OperationRun struct {
	Op    Operation
	Count uint32
}

// Operations is a run-length encoded edit script, ordered from the start
// of the alignment to its end (query/target increasing).
type Operations []OperationRun

// add appends n operations of kind op, merging into the previous run when
// it is of the same kind.
func (ops *Operations) add(op Operation, n uint32) {
	if n == 0 {
		return
	}
	if l := len(*ops); l > 0 && (*ops)[l-1].Op == op {
		(*ops)[l-1].Count += n
		return
	}
	*ops = append(*ops, OperationRun{Op: op, Count: n})
}

// reverse reverses the run order in place, used because backtraces are
// reconstructed from the end of the extension toward its anchor.
func (ops Operations) reverse() {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}

// concatOperations joins left, mid and right in that order, merging
// same-kind runs at each boundary.
func concatOperations(left, mid, right Operations) Operations {
	out := make(Operations, 0, len(left)+len(mid)+len(right))
	out = append(out, left...)
	for _, r := range mid {
		out.add(r.Op, r.Count)
	}
	for _, r := range right {
		out.add(r.Op, r.Count)
	}
	return out
}

// stats computes the summary counters derived from an edit script:
// total length (in alignment columns), and the insertion and deletion
// base counts.
func (ops Operations) stats() (length, insertionCount, deletionCount uint32) {
	for _, r := range ops {
		length += r.Count
		switch r.Op {
		case Insertion:
			insertionCount += r.Count
		case Deletion:
			deletionCount += r.Count
		}
	}
	return
}
