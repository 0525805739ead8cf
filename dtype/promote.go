package dtype

// allIn reports whether every kind is a member of the given set.
func allIn(kinds []Kind, set ...Kind) bool {
	for _, k := range kinds {
		found := false
		for _, s := range set {
			if k == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func allMatch(kinds []Kind, pred func(Kind) bool) bool {
	for _, k := range kinds {
		if !pred(k) {
			return false
		}
	}
	return true
}

// Promote computes the least upper bound of the given element kinds under the
// fixed promotion lattice:
//
//   - boolean-only contents stay boolean
//   - integer contents promote to the smallest signed width covering all of
//     them, topping out at int64 (or uint64 for unsigned-only contents)
//   - floating contents promote to the smallest covering floating width
//   - mixed integer and floating contents promote to float64
//   - complex contents follow the analogous rule, with any mix of numeric and
//     complex contents promoting to complex128
//   - anything outside the numeric lattice promotes to KindObject
//
// An empty input yields KindInvalid.
func Promote(kinds ...Kind) Kind {
	if len(kinds) == 0 {
		return KindInvalid
	}

	switch {
	case allIn(kinds, KindBool):
		return KindBool
	case allIn(kinds, KindInt8):
		return KindInt8
	case allIn(kinds, KindUint8):
		return KindUint8
	case allIn(kinds, KindInt8, KindUint8, KindInt16):
		return KindInt16
	case allIn(kinds, KindUint8, KindUint16):
		return KindUint16
	case allIn(kinds, KindInt8, KindUint8, KindInt16, KindUint16, KindInt32):
		return KindInt32
	case allIn(kinds, KindUint8, KindUint16, KindUint32):
		return KindUint32
	case allIn(kinds, KindInt8, KindUint8, KindInt16, KindUint16, KindInt32, KindUint32, KindInt64):
		return KindInt64
	case allIn(kinds, KindUint8, KindUint16, KindUint32, KindUint64):
		return KindUint64
	case allIn(kinds, KindFloat32):
		return KindFloat32
	case allIn(kinds, KindFloat32, KindFloat64):
		return KindFloat64
	case allMatch(kinds, func(k Kind) bool { return k.IsInteger() || k.IsFloat() }):
		return KindFloat64
	case allIn(kinds, KindComplex64):
		return KindComplex64
	case allIn(kinds, KindComplex64, KindComplex128):
		return KindComplex128
	case allMatch(kinds, Kind.IsNumeric):
		return KindComplex128
	default:
		return KindObject
	}
}
