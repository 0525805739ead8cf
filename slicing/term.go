package slicing

// Term is one component of a multi-dimensional index expression. The closed
// set of implementations is At (integer), Range (3-term slice), Pick
// (integer array) and Mask (boolean mask).
//
// Each term consumes one structural dimension of the array being indexed.
type Term interface {
	isTerm()
}

// At indexes a single position along one dimension.
type At int64

func (At) isTerm() {}

// Pick gathers positions along one dimension by an integer array. Negative
// entries are normalized by the length of the dimension (per row, for ragged
// dimensions). The first Pick in an expression broadcasts independently per
// row; subsequent Picks pair up positionally with it.
type Pick []int64

func (Pick) isTerm() {}

// PickOf builds a Pick from ints, for readability at call sites.
func PickOf(values ...int64) Pick { return Pick(values) }
