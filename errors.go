package sigalign

import (
	"fmt"

	"github.com/pkg/errors"
)

// RegulatorErrorKind classifies why a Regulator could not be constructed.
type RegulatorErrorKind int

const (
	// InvalidGapExtend means the gap extend penalty e is zero.
	InvalidGapExtend RegulatorErrorKind = iota + 1
	// InvalidMaxPpL means the cutoff's penalty-per-length is not positive.
	InvalidMaxPpL
	// LowCutoff means the computed pattern size k is below the minimum of 4.
	LowCutoff
)

func (k RegulatorErrorKind) String() string {
	switch k {
	case InvalidGapExtend:
		return "invalid gap extend penalty"
	case InvalidMaxPpL:
		return "invalid max penalty per length"
	case LowCutoff:
		return "cutoff too low to guarantee a pattern match"
	default:
		return "unknown regulator error"
	}
}

// RegulatorError is returned by NewRegulator when the supplied penalty and
// cutoff parameters cannot produce a usable configuration.
type RegulatorError struct {
	Kind RegulatorErrorKind
}

func (e *RegulatorError) Error() string {
	return fmt.Sprintf("sigalign: %s", e.Kind)
}

// ErrUnsupportedQuery is returned when the query contains a character the
// pattern locator rejects.
var ErrUnsupportedQuery = errors.New("sigalign: query contains an unsupported character")

// ErrEmptyQuery is returned when Align is called with an empty query.
var ErrEmptyQuery = errors.New("sigalign: query is empty")
