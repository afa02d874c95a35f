package sigalign

// PrecScale is the fixed-point scale applied to MaxPpL so that the cutoff
// line can be compared against integer penalties without floating point.
const PrecScale uint32 = 100_000

// minimumPatternSize is the smallest pattern size the engine will accept;
// below this a single k-mer carries too little specificity for the anchor
// table to be useful, so NewRegulator rejects the configuration.
const minimumPatternSize uint32 = 4

// penalties holds the three gap-affine costs after GCD reduction.
type penalties struct {
	X, O, E uint32
}

func (p penalties) gcd() uint32 {
	return gcdUint32(gcdUint32(p.X, p.O), p.E)
}

func gcdUint32(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// minPenaltyForPattern is the smallest penalty a single pattern of length k
// can cost under the parity of its index in a worst-case split.
type minPenaltyForPattern struct {
	Odd, Even uint32
}

func newMinPenaltyForPattern(p penalties) minPenaltyForPattern {
	var odd, even uint32
	if p.X <= p.O+p.E {
		odd = p.X
		if p.X*2 <= p.O+p.E*2 {
			even = p.X
		} else {
			even = p.O + p.E*2 - p.X
		}
	} else {
		odd = p.O + p.E
		even = p.E
	}
	return minPenaltyForPattern{Odd: odd, Even: even}
}

// Regulator holds the reduced penalty set and the derived cutoff constants
// shared by every alignment run against a fixed (x,o,e,MinLen,MaxPpL).
// It is built once and never mutated afterwards.
type Regulator struct {
	penalties            penalties
	minPenaltyForPattern  minPenaltyForPattern
	minLen                uint32
	maxPpS                uint32 // scaled cutoff, reduced by gcd
	patternSize           uint32
	gcd                   uint32 // original gcd(x,o,e), used to re-inflate results
}

// NewRegulator validates (x,o,e,MinLen,MaxPpL) and derives the pattern size
// k, the reduced penalties, and the scaled cutoff. It returns a
// *RegulatorError when e == 0, MaxPpL <= 0, or the derived k is below 4.
func NewRegulator(mismatch, gapOpen, gapExtend, minLen uint32, maxPpL float32) (*Regulator, error) {
	if gapExtend == 0 {
		return nil, &RegulatorError{Kind: InvalidGapExtend}
	}
	if maxPpL <= 0 {
		return nil, &RegulatorError{Kind: InvalidMaxPpL}
	}

	p := penalties{X: mismatch, O: gapOpen, E: gapExtend}
	maxPpS := uint32(maxPpL*float32(PrecScale) + 0.5)

	g := p.gcd()
	if g == 0 {
		g = 1
	}
	reduced := penalties{X: p.X / g, O: p.O / g, E: p.E / g}
	reducedMaxPpS := maxPpS / g

	mpp := newMinPenaltyForPattern(reduced)
	k := calculateMaxPatternSize(minLen, reducedMaxPpS, reduced, mpp)

	if k < minimumPatternSize {
		return nil, &RegulatorError{Kind: LowCutoff}
	}

	return &Regulator{
		penalties:           reduced,
		minPenaltyForPattern: mpp,
		minLen:               minLen,
		maxPpS:                reducedMaxPpS,
		patternSize:           k,
		gcd:                   g,
	}, nil
}

// Penalties returns the GCD-reduced (mismatch, gapOpen, gapExtend).
func (r *Regulator) Penalties() (x, o, e uint32) {
	return r.penalties.X, r.penalties.O, r.penalties.E
}

// PatternSize returns k, the length of one seeding pattern.
func (r *Regulator) PatternSize() uint32 { return r.patternSize }

// MinLen returns the minimum accepted alignment length.
func (r *Regulator) MinLen() uint32 { return r.minLen }

// MaxPpS returns the reduced, scaled cutoff (MaxPpL * PrecScale / gcd).
func (r *Regulator) MaxPpS() uint32 { return r.maxPpS }

// GCD returns the divisor originally removed from (x,o,e,MaxPpS); it must
// be multiplied back into any penalty returned to the caller.
func (r *Regulator) GCD() uint32 { return r.gcd }

// satisfiesCutoff reports whether penalty*PrecScale <= MaxPpS*length holds
// for the reduced (not yet re-inflated) penalty.
func (r *Regulator) satisfiesCutoff(penalty, length uint32) bool {
	if length < r.minLen {
		return false
	}
	return uint64(penalty)*uint64(PrecScale) <= uint64(r.maxPpS)*uint64(length)
}

// inflate multiplies a reduced penalty back by the stored GCD before it is
// handed back to the caller.
func (r *Regulator) inflate(penalty uint32) uint32 { return penalty * r.gcd }

// -----------------------------------------------------------------------
// Pattern size search: binary search over five corner points of
// (length, minPenalty) across the six geometric cases a cutoff line
// can take relative to the penalty-vs-length plane.

func calculateMaxPatternSize(minLen, maxPpS uint32, p penalties, mpp minPenaltyForPattern) uint32 {
	lowerK, upperK := uint32(1), upperValueOfK(minLen, maxPpS, mpp)
	if upperK < lowerK {
		return 0
	}

	result := lowerK
	for lowerK <= upperK {
		midK := lowerK + (upperK-lowerK)/2
		if checkPatternSizeCandidate(midK, minLen, maxPpS, p, mpp) {
			result = midK
			lowerK = midK + 1
		} else {
			if midK == 0 {
				break
			}
			upperK = midK - 1
		}
	}
	return result
}

func upperValueOfK(minLen, maxPpS uint32, mpp minPenaltyForPattern) uint32 {
	v1 := uint32(0)
	if maxPpS > 0 {
		v1 = (PrecScale * (mpp.Odd + mpp.Even)) / (2 * maxPpS)
	}
	v2 := divCeil(minLen+2, 2)
	if v2 >= 1 {
		v2--
	}
	if v1 < v2 {
		return v1
	}
	return v2
}

func divCeil(a, b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// touchesOrClearsCutoff reports whether (penalty, length) lies strictly
// above the cutoff line, i.e. it would NOT satisfy the cutoff -- used to
// confirm that a "corner point" just above the line really is rejected.
func touchesOrClearsCutoff(penalty, length, maxPpS uint32) bool {
	return uint64(penalty)*uint64(PrecScale) > uint64(maxPpS)*uint64(length)
}

func calculateM(k, minLen uint32) uint32 {
	if k > minLen+2 {
		return 0
	}
	return (minLen + 2 - k) / (2 * k)
}

func getPC(p penalties) uint32 {
	if p.O+p.E <= p.X {
		return 0
	}
	return p.E
}

func checkPatternSizeCandidate(k, minLen, maxPpS uint32, p penalties, mpp minPenaltyForPattern) bool {
	m := calculateM(k, minLen)
	var caseNumber uint32
	if m == 0 {
		m = 1
		caseNumber = 1
	} else {
		cn, ok := minimumPenaltyCaseNumber(k, m, minLen, maxPpS, p, mpp)
		if !ok {
			return false
		}
		caseNumber = cn
	}
	return validateNextFivePoints(caseNumber, k, m, maxPpS, p, mpp)
}

// minimumPenaltyCaseNumber computes, for the minimum accepted length, the
// minimum possible penalty under the worst-case split into m patterns and
// returns which of the six geometric "cases" applies, along with whether
// that point clears the cutoff line.
func minimumPenaltyCaseNumber(k, m, minLen, maxPpS uint32, p penalties, mpp minPenaltyForPattern) (uint32, bool) {
	var caseNumber, minPenalty uint32
	switch {
	case minLen == 2*m*k+k-2:
		caseNumber = 1
		minPenalty = m*mpp.Odd + (m-1)*mpp.Even
	case minLen == 2*m*k+k-1:
		caseNumber = 2
		minPenalty = m*mpp.Odd + (m-1)*mpp.Even + p.O + p.E - mpp.Odd
	case minLen <= 2*m*k+2*k-2:
		caseNumber = 3
		useOneMore := m*mpp.Odd + m*mpp.Even
		if minLen+1 < 2*m*k+k {
			minPenalty = useOneMore
		} else {
			fromPrevious := m*mpp.Odd + (m-1)*mpp.Even + p.O + p.E - mpp.Odd + p.E*(minLen+1-2*m*k-k)
			minPenalty = minUint32(useOneMore, fromPrevious)
		}
	case minLen == 2*m*k+2*k-1:
		caseNumber = 4
		minPenalty = m*mpp.Odd + m*mpp.Even + p.O + p.E - mpp.Even
	case minLen == 2*m*k+2*k:
		caseNumber = 5
		minPenalty = m*mpp.Odd + m*mpp.Even + p.O + p.E - mpp.Even + getPC(p)
	default: // minLen < 3*m*k + 2*k - 2, case 6
		caseNumber = 6
		useOneMore := (m+1)*mpp.Odd + m*mpp.Even
		if minLen < 2*m*k+2*k {
			minPenalty = useOneMore
		} else {
			fromPrevious := m*mpp.Odd + m*mpp.Even + p.O + p.E - mpp.Even + getPC(p) + p.E*(minLen-2*m*k-2*k)
			minPenalty = minUint32(useOneMore, fromPrevious)
		}
	}

	if touchesOrClearsCutoff(minPenalty, minLen, maxPpS) {
		return caseNumber, true
	}
	return 0, false
}

func validateNextFivePoints(caseNumber, k, m, maxPpS uint32, p penalties, mpp minPenaltyForPattern) bool {
	// Point 1
	{
		l := 2*m*k + k - 2
		pen := m*mpp.Odd + (m-1)*mpp.Even
		if caseNumber > 1 {
			l += 2 * k
			pen += mpp.Odd + mpp.Even
		}
		if !touchesOrClearsCutoff(pen, l, maxPpS) {
			return false
		}
	}
	// Point 2
	{
		l := 2*m*k + k - 1
		pen := m*mpp.Odd + (m-1)*mpp.Even + p.O + p.E - mpp.Odd
		if caseNumber > 2 {
			l += 2 * k
			pen += mpp.Odd + mpp.Even
		}
		if !touchesOrClearsCutoff(pen, l, maxPpS) {
			return false
		}
	}
	// Point 3
	{
		l := 2*m*k + 2*k - 2
		pen := m*mpp.Odd + m*mpp.Even
		if caseNumber > 3 {
			l += 2 * k
			pen += p.O + p.E - mpp.Even
		}
		if !touchesOrClearsCutoff(pen, l, maxPpS) {
			return false
		}
	}
	// Point 4
	{
		l := 2*m*k + 2*k - 1
		pen := m*mpp.Odd + m*mpp.Even + p.O + p.E - mpp.Even
		if caseNumber > 4 {
			l += 2 * k
			pen += mpp.Even
		}
		if !touchesOrClearsCutoff(pen, l, maxPpS) {
			return false
		}
	}
	// Point 5
	{
		l := 2*m*k + 2*k
		pen := m*mpp.Odd + m*mpp.Even + p.O + p.E - mpp.Even + getPC(p)
		if caseNumber > 5 {
			l += 2 * k
			pen += mpp.Even
		}
		if !touchesOrClearsCutoff(pen, l, maxPpS) {
			return false
		}
	}
	return true
}

func minUint32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}
