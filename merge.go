package intset

import "golang.org/x/exp/constraints"

// Two-pointer kernels over sorted slices. They carry no knowledge of
// capacities or sentinels; callers pass only the live windows.

// insertionPoint returns the index of the first element of items that is
// greater than or equal to v, and whether v itself is present. items must
// be sorted ascending.
func insertionPoint[T constraints.Ordered](items []T, v T) (int, bool) {
	for i := range items {
		if items[i] == v {
			return i, true
		}
		if items[i] > v {
			return i, false
		}
	}
	return len(items), false
}

// searchBinary reports whether sorted items contains v.
func searchBinary[T constraints.Ordered](items []T, v T) bool {
	lo, hi := 0, len(items)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case items[mid] == v:
			return true
		case items[mid] > v:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}
	return false
}

// subsetOf reports whether every element of sorted a occurs in sorted b.
func subsetOf[T constraints.Ordered](a, b []T) bool {
	var ai, bi int
	for ai < len(a) && bi < len(b) {
		switch {
		case a[ai] > b[bi]:
			bi++
		case a[ai] == b[bi]:
			ai++
			bi++
		default:
			// a[ai] is smaller than anything left in b
			return false
		}
	}
	return ai == len(a)
}

// mergeIntersect writes the elements common to sorted a and b into dst and
// returns how many it wrote. dst must hold at least min(len(a), len(b)).
func mergeIntersect[T constraints.Ordered](dst, a, b []T) int {
	var n, ai, bi int
	for ai < len(a) && bi < len(b) {
		switch {
		case a[ai] < b[bi]:
			ai++
		case a[ai] > b[bi]:
			bi++
		default:
			dst[n] = a[ai]
			n++
			ai++
			bi++
		}
	}
	return n
}

// mergeSymDiff writes the elements occurring in exactly one of sorted a and
// sorted b into dst and returns how many it wrote. dst must hold at least
// len(a) + len(b).
func mergeSymDiff[T constraints.Ordered](dst, a, b []T) int {
	var n, ai, bi int
	for ai < len(a) && bi < len(b) {
		switch {
		case a[ai] == b[bi]:
			ai++
			bi++
		case a[ai] < b[bi]:
			dst[n] = a[ai]
			n++
			ai++
		default:
			dst[n] = b[bi]
			n++
			bi++
		}
	}
	for ; ai < len(a); ai++ {
		dst[n] = a[ai]
		n++
	}
	for ; bi < len(b); bi++ {
		dst[n] = b[bi]
		n++
	}
	return n
}
