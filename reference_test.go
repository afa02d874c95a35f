package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedCountStorage struct{ n uint32 }

func (s fixedCountStorage) NumTargets() uint32        { return s.n }
func (s fixedCountStorage) GetBuffer() Buffer         { return nil }
func (s fixedCountStorage) FillBuffer(uint32, Buffer) {}

func TestSortedTargetIndicesCoversEveryTarget(t *testing.T) {
	ref := NewReference(nil, fixedCountStorage{n: 4})
	assert.Equal(t, []uint32{0, 1, 2, 3}, ref.sortedTargetIndices())
}

func TestWithLabelsAttachesOptionalHook(t *testing.T) {
	ref := NewReference(nil, fixedCountStorage{n: 1})
	assert.Nil(t, ref.Labels)

	labels := stubLabel{}
	ref.WithLabels(labels)
	assert.Equal(t, labels, ref.Labels)
}

type stubLabel struct{}

func (stubLabel) LabelOf(uint32) string { return "x" }
