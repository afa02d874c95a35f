package sigalign

// Buffer is a reusable byte buffer a SequenceStorage fills with one
// target's sequence on request, so the engine never copies target
// bytes into its own allocations.
type Buffer interface {
	// RequestedSequence returns the bytes most recently written by
	// FillBuffer.
	RequestedSequence() []byte
}

// SequenceStorage is the external collaborator that owns target
// sequence bytes, whether held in memory, backed by an indexed FASTA
// file, or anything else a caller wires in.
type SequenceStorage interface {
	NumTargets() uint32
	GetBuffer() Buffer
	FillBuffer(targetIndex uint32, buf Buffer)
}

// Label optionally names targets for callers that want alignment
// results annotated with something more durable than a bare index.
type Label interface {
	LabelOf(targetIndex uint32) string
}

// Reference bundles the two external collaborators an Aligner needs:
// a PatternLocator to seed anchors and a SequenceStorage to read target
// bytes during extension. It is immutable from the aligner's
// perspective and safe to share read-only across concurrently aligning
// goroutines, each with its own Aligner and Workspace.
type Reference struct {
	Locator PatternLocator
	Storage SequenceStorage
	Labels  Label // optional, may be nil
}

// NewReference bundles a locator and storage backend into a Reference.
func NewReference(locator PatternLocator, storage SequenceStorage) *Reference {
	return &Reference{Locator: locator, Storage: storage}
}

// WithLabels attaches an optional target-naming hook.
func (r *Reference) WithLabels(labels Label) *Reference {
	r.Labels = labels
	return r
}

// sortedTargetIndices returns every target index in the reference, in
// ascending order, for a locator call that does not itself narrow the
// candidate set.
func (r *Reference) sortedTargetIndices() []uint32 {
	n := r.Storage.NumTargets()
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}
