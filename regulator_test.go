package sigalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRegulatorRejectsZeroGapExtend(t *testing.T) {
	_, err := NewRegulator(4, 6, 0, 30, 0.1)
	var regErr *RegulatorError
	if assert.ErrorAs(t, err, &regErr) {
		assert.Equal(t, InvalidGapExtend, regErr.Kind)
	}
}

func TestNewRegulatorRejectsNonPositiveMaxPpL(t *testing.T) {
	_, err := NewRegulator(4, 6, 2, 30, 0)
	var regErr *RegulatorError
	if assert.ErrorAs(t, err, &regErr) {
		assert.Equal(t, InvalidMaxPpL, regErr.Kind)
	}
}

func TestNewRegulatorRejectsLowCutoff(t *testing.T) {
	_, err := NewRegulator(4, 6, 2, 30, 1.0)
	var regErr *RegulatorError
	if assert.ErrorAs(t, err, &regErr) {
		assert.Equal(t, LowCutoff, regErr.Kind)
	}
}

func TestNewRegulatorDerivesAtLeastMinimumPatternSize(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.1)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, r.PatternSize(), minimumPatternSize)
}

func TestRegulatorPenaltiesReducedByGCD(t *testing.T) {
	r, err := NewRegulator(8, 12, 4, 30, 0.1)
	assert.NoError(t, err)
	x, o, e := r.Penalties()
	assert.Equal(t, uint32(4), r.GCD())
	assert.Equal(t, uint32(2), x)
	assert.Equal(t, uint32(3), o)
	assert.Equal(t, uint32(1), e)
}

func TestRegulatorInflateRestoresOriginalScale(t *testing.T) {
	r, err := NewRegulator(8, 12, 4, 30, 0.1)
	assert.NoError(t, err)
	assert.Equal(t, uint32(20), r.inflate(5))
}

func TestRegulatorSatisfiesCutoffRejectsBelowMinLen(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.5)
	assert.NoError(t, err)
	assert.False(t, r.satisfiesCutoff(0, 10))
}

func TestRegulatorSatisfiesCutoffRejectsOverCutoff(t *testing.T) {
	r, err := NewRegulator(4, 6, 2, 30, 0.1)
	assert.NoError(t, err)
	assert.True(t, r.satisfiesCutoff(0, 30))
	assert.False(t, r.satisfiesCutoff(r.MaxPpS()*40, 30))
}

func TestGCDUint32(t *testing.T) {
	assert.Equal(t, uint32(4), gcdUint32(8, 12))
	assert.Equal(t, uint32(1), gcdUint32(7, 5))
	assert.Equal(t, uint32(6), gcdUint32(6, 0))
}
