package sigalign

// component is one wavefront cell for a single layer (M, D, or I) on one
// diagonal. fr ("far-reaching") is the furthest target index reached by
// an alignment of this penalty ending in this layer on this diagonal.
// The zero value means Empty: fr==0, bt==btEmpty, never written by the
// fill, so entire rows can be reset with a bulk clear instead of a
// per-cell loop.
type component struct {
	fr             int32
	insertionCount uint16
	bt             backTraceMarker
	_pad           uint8
}

func (c component) isEmpty() bool { return c.bt == btEmpty }

// components holds the M/D/I triple for one diagonal of one score row.
type components struct {
	M, D, I component
}
