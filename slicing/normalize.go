package slicing

// BroadcastLen returns the broadcast length implied by the array-valued terms
// of an index expression: the maximum length among Picks, with masks counted
// by their true-count. Zero means no array-valued term is present.
func BroadcastLen(terms []Term) int64 {
	var n int64
	for _, t := range terms {
		switch h := t.(type) {
		case Pick:
			if int64(len(h)) > n {
				n = int64(len(h))
			}
		case *Mask:
			if c := h.TrueCount(); c > n {
				n = c
			}
		}
	}
	return n
}

// NormalizeTerms rewrites a raw index expression for the recursive engine:
// masks become the Pick of their true positions, and when any array-valued
// term is present, bare integers and length-1 Picks are broadcast up to the
// broadcast length. Other terms pass through unchanged.
func NormalizeTerms(terms []Term) []Term {
	n := BroadcastLen(terms)
	out := make([]Term, len(terms))
	for i, t := range terms {
		switch h := t.(type) {
		case *Mask:
			out[i] = h.Positions()
		case At:
			if n != 0 {
				pick := make(Pick, n)
				for j := range pick {
					pick[j] = int64(h)
				}
				out[i] = pick
			} else {
				out[i] = h
			}
		case Pick:
			if len(h) == 1 && n > 1 {
				pick := make(Pick, n)
				for j := range pick {
					pick[j] = h[0]
				}
				out[i] = pick
			} else {
				out[i] = h
			}
		default:
			out[i] = t
		}
	}
	return out
}
