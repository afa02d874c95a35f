package sigalign

// vpc (Valid Position Candidate) is one point on a local-mode
// extension's Pareto frontier in the (queryLength, scaledPenaltyDelta)
// plane: longer queryLength pairs with strictly smaller delta.
type vpc struct {
	scaledPenaltyDelta int32
	queryLength        uint32
	penalty            uint32
	componentIndex      uint32
}

// pointOfMaximumQueryLength scans one score row for the diagonal with
// the greatest query length reached (fr - k), returning that query
// length, the (match + insertion) length of the full path to it, and
// its component index within the row.
func pointOfMaximumQueryLength(row *scoreRow) (maxQueryLength uint32, length int32, compIndex uint32) {
	for idx, c := range row.cells {
		if c.M.isEmpty() {
			continue
		}
		queryLength := c.M.fr + row.maxK - int32(idx)
		if uint32(queryLength) > maxQueryLength {
			maxQueryLength = uint32(queryLength)
			length = c.M.fr + int32(c.M.insertionCount)
			compIndex = uint32(idx)
		}
	}
	return
}

// fillSortedVPCVector appends one VPC per reached penalty row of wf
// (the row's furthest-reaching diagonal) into buffer, maintaining the
// Pareto-frontier invariant: buffer stays sorted by queryLength
// ascending while scaledPenaltyDelta strictly decreases, so a
// dominated candidate (same or shorter length, no better delta) is
// never kept.
func fillSortedVPCVector(wf *waveFront, maxPpS uint32, buffer *[]vpc) {
	lastPenalty := wf.endPenalty

	for penalty := uint32(0); penalty <= lastPenalty; penalty++ {
		row := &wf.rows[penalty]
		maxQueryLength, length, compIndex := pointOfMaximumQueryLength(row)
		scaledDelta := int32(length)*int32(maxPpS) - int32(penalty)*int32(PrecScale)

		buf := *buffer
		qlInsert, pdInsert := -1, -1
		qlSameAsPre := false

		for i := len(buf) - 1; i >= 0; i-- {
			if qlInsert == -1 {
				if buf[i].queryLength <= maxQueryLength {
					if buf[i].queryLength == maxQueryLength {
						qlSameAsPre = true
					}
					qlInsert = i + 1
				}
			}
			if pdInsert == -1 && buf[i].scaledPenaltyDelta > scaledDelta {
				pdInsert = i + 1
			}
			if qlInsert != -1 && pdInsert != -1 {
				break
			}
		}
		if qlInsert == -1 {
			qlInsert = 0
		}
		if pdInsert == -1 {
			pdInsert = 0
		}

		candidate := vpc{queryLength: maxQueryLength, scaledPenaltyDelta: scaledDelta, penalty: penalty, componentIndex: compIndex}

		switch {
		case qlInsert > pdInsert:
			buf = append(buf[:pdInsert], buf[qlInsert:]...)
			buf = insertVPC(buf, pdInsert, candidate)
		case qlInsert == pdInsert:
			if !qlSameAsPre {
				if qlInsert == len(buf) || buf[qlInsert].scaledPenaltyDelta < scaledDelta {
					buf = insertVPC(buf, pdInsert, candidate)
				}
			}
		}
		*buffer = buf
	}
}

func insertVPC(buf []vpc, at int, v vpc) []vpc {
	buf = append(buf, vpc{})
	copy(buf[at+1:], buf[at:])
	buf[at] = v
	return buf
}

// optimalVPCPair returns the indices, one per side, of the (left,
// right) VPC pair maximizing combined query length among pairs whose
// combined scaled penalty delta (plus the anchor's own) is
// non-negative. Both vectors are Pareto-sorted, so scanning from the
// longest query length down on each side and breaking at the first
// satisfying right-side candidate is sufficient.
func optimalVPCPair(left, right []vpc, anchorScaledDelta uint32) (int, int, bool) {
	bestLeft, bestRight := -1, -1
	bestLength := uint32(0)

	for li := len(left) - 1; li >= 0; li-- {
		for ri := len(right) - 1; ri >= 0; ri-- {
			margin := left[li].scaledPenaltyDelta + right[ri].scaledPenaltyDelta + int32(anchorScaledDelta)
			if margin >= 0 {
				length := left[li].queryLength + right[ri].queryLength
				if length > bestLength {
					bestLength = length
					bestLeft, bestRight = li, ri
				}
				break
			}
		}
	}
	return bestLeft, bestRight, bestLeft >= 0
}
