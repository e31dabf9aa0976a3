// Package intset implements an ordered set of int32 values backed by a
// contiguous sorted array with manual capacity management.
//
// Storage layout: a buffer of Capacity slots, of which the first Len hold
// the members in strictly ascending order; every remaining slot holds the
// Sentinel value. The buffer is absent when Capacity is 0. Every exported
// operation preserves this layout.
//
// Sentinel (math.MinInt32) marks unused slots and is excluded from the
// element domain: it can never become a member of any set.
package intset

import "math"

// Sentinel fills every slot that does not hold a member. Insert rejects it.
const Sentinel int32 = math.MinInt32

// SortedSet is an ordered set of int32 values. The zero value is an empty
// set with zero capacity. A SortedSet owns its buffer exclusively; no two
// sets ever share storage.
//
// A SortedSet is not safe for concurrent use.
type SortedSet struct {
	data []int32 // len(data) == capacity; nil when capacity is 0
	used int
}

// New creates an empty set with the given capacity. All slots are
// sentinel-filled. A capacity of zero (or less) allocates nothing.
func New(capacity int) *SortedSet {
	s := &SortedSet{}
	if capacity > 0 {
		s.data = make([]int32, capacity)
		fillSentinel(s.data)
	}
	return s
}

// Insert adds v to the set, keeping the members sorted. It reports whether
// the set was modified: inserting a value that is already present, or the
// Sentinel value, is a no-op returning false.
//
// When no spare slot remains the buffer is replaced by one twice as large;
// the set never becomes completely full. O(Len).
func (s *SortedSet) Insert(v int32) (modified bool) {
	if v == Sentinel {
		return false
	}

	i, found := insertionPoint(s.live(), v)
	if found {
		return false
	}

	if s.used+1 < len(s.data) {
		copy(s.data[i+1:s.used+1], s.data[i:s.used])
		s.data[i] = v
		s.used++
		return true
	}

	grown := make([]int32, 2*max(1, len(s.data)))
	copy(grown, s.data[:i])
	grown[i] = v
	copy(grown[i+1:], s.data[i:s.used])
	fillSentinel(grown[s.used+1:])
	s.data = grown
	s.used++
	return true
}

// Remove deletes v from the set and reports whether it was present.
// The trailing slot vacated by the shift is reset to Sentinel. O(Len).
func (s *SortedSet) Remove(v int32) bool {
	i, found := insertionPoint(s.live(), v)
	if !found {
		return false
	}

	copy(s.data[i:s.used-1], s.data[i+1:s.used])
	s.used--
	s.data[s.used] = Sentinel
	return true
}

// Has reports whether v is a member of the set. O(log Len).
func (s *SortedSet) Has(v int32) bool {
	return searchBinary(s.live(), v)
}

// Equals reports whether both sets contain exactly the same members.
// Capacities may differ. O(Len).
func (s *SortedSet) Equals(other *SortedSet) bool {
	if s.used != other.used {
		return false
	}
	for i := 0; i < s.used; i++ {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every member of s is also a member of other.
// O(s.Len + other.Len).
func (s *SortedSet) IsSubsetOf(other *SortedSet) bool {
	if s.used > other.used {
		return false
	}
	return subsetOf(s.live(), other.live())
}

// Intersect replaces the contents of s with the intersection of a and b.
// The new capacity is min(a.Capacity, b.Capacity). The replacement buffer
// is built completely before the old one is released, so s may alias a or b.
// O(max(a.Len, b.Len)).
func (s *SortedSet) Intersect(a, b *SortedSet) {
	capacity := min(len(a.data), len(b.data))
	if capacity == 0 {
		s.data = nil
		s.used = 0
		return
	}

	data := make([]int32, capacity)
	n := mergeIntersect(data, a.live(), b.live())
	fillSentinel(data[n:])
	s.data = data
	s.used = n
}

// SymmetricDifference replaces the contents of s with the members that occur
// in exactly one of a and b. The new capacity is a.Capacity + b.Capacity,
// an upper bound rather than a tight fit. s may alias a or b.
// O(a.Len + b.Len).
func (s *SortedSet) SymmetricDifference(a, b *SortedSet) {
	capacity := len(a.data) + len(b.data)
	if capacity == 0 {
		s.data = nil
		s.used = 0
		return
	}

	data := make([]int32, capacity)
	n := mergeSymDiff(data, a.live(), b.live())
	fillSentinel(data[n:])
	s.data = data
	s.used = n
}

// CopyFrom makes s a deep copy of src: same capacity, same members, an
// independent buffer. Copying a set into itself is a no-op. O(src.Capacity).
func (s *SortedSet) CopyFrom(src *SortedSet) {
	if s == src {
		return
	}
	if src.data == nil {
		s.data = nil
		s.used = 0
		return
	}

	data := make([]int32, len(src.data))
	copy(data, src.data)
	s.data = data
	s.used = src.used
}

// Clone returns a new set that is a deep copy of s.
func (s *SortedSet) Clone() *SortedSet {
	c := &SortedSet{}
	c.CopyFrom(s)
	return c
}

// Items returns the members in ascending order. The returned slice is a
// snapshot independent of the set's storage.
func (s *SortedSet) Items() []int32 {
	items := make([]int32, s.used)
	copy(items, s.data[:s.used])
	return items
}

// Capacity returns the total number of allocated slots.
func (s *SortedSet) Capacity() int {
	return len(s.data)
}

// Len returns the number of members.
func (s *SortedSet) Len() int {
	return s.used
}

// IsEmpty reports whether the set has no members.
func (s *SortedSet) IsEmpty() bool {
	return s.used == 0
}

// live is the window of slots currently holding members.
func (s *SortedSet) live() []int32 {
	return s.data[:s.used]
}

func fillSentinel(slots []int32) {
	for i := range slots {
		slots[i] = Sentinel
	}
}
