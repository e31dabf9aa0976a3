package intset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertProper checks the storage layout that every operation must preserve:
// a zero-capacity set holds no buffer; otherwise the live window is strictly
// ascending, never holds the sentinel, and the tail is sentinel-filled.
func assertProper(t *testing.T, s *SortedSet) {
	t.Helper()

	if len(s.data) == 0 {
		assert.Nil(t, s.data)
		assert.Equal(t, 0, s.used)
		return
	}

	require.LessOrEqual(t, s.used, len(s.data))
	for i := 0; i < s.used; i++ {
		assert.NotEqual(t, Sentinel, s.data[i], "live slot %d holds the sentinel", i)
		if i > 0 {
			assert.Less(t, s.data[i-1], s.data[i], "slots %d and %d out of order", i-1, i)
		}
	}
	for i := s.used; i < len(s.data); i++ {
		assert.Equal(t, Sentinel, s.data[i], "tail slot %d not sentinel-filled", i)
	}
}

func TestProperness(t *testing.T) {
	t.Run("after construction", func(t *testing.T) {
		assertProper(t, New(0))
		assertProper(t, New(1))
		assertProper(t, New(16))
		assertProper(t, &SortedSet{})
	})

	t.Run("after inserts across several growths", func(t *testing.T) {
		s := New(0)
		for _, v := range []int32{9, -3, 4, 17, 0, -8, 2, 11, 6, -1} {
			require.True(t, s.Insert(v))
			assertProper(t, s)
		}
	})

	t.Run("after interleaved inserts and removes", func(t *testing.T) {
		s := New(2)
		for v := int32(0); v < 20; v++ {
			s.Insert(v * 3)
			assertProper(t, s)
			if v%2 == 0 {
				s.Remove(v * 3)
				assertProper(t, s)
			}
		}
	})

	t.Run("after removing every element", func(t *testing.T) {
		s := New(8)
		for v := int32(1); v <= 5; v++ {
			s.Insert(v)
		}
		for v := int32(5); v >= 1; v-- {
			require.True(t, s.Remove(v))
			assertProper(t, s)
		}
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 8, s.Capacity())
	})

	t.Run("after set algebra", func(t *testing.T) {
		a := New(8)
		b := New(8)
		for _, v := range []int32{1, 3, 5, 7} {
			a.Insert(v)
		}
		for _, v := range []int32{3, 4, 5, 9} {
			b.Insert(v)
		}

		out := New(0)
		out.Intersect(a, b)
		assertProper(t, out)

		out.SymmetricDifference(a, b)
		assertProper(t, out)

		out.CopyFrom(a)
		assertProper(t, out)
	})

	t.Run("after aliased set algebra", func(t *testing.T) {
		a := New(8)
		b := New(8)
		for _, v := range []int32{1, 2, 3} {
			a.Insert(v)
		}
		for _, v := range []int32{2, 3, 4} {
			b.Insert(v)
		}

		a.SymmetricDifference(a, b)
		assertProper(t, a)

		b.Intersect(b, b)
		assertProper(t, b)
	})
}

func TestInsert_GrowthMergesIntoNewBuffer(t *testing.T) {
	s := New(3)
	require.True(t, s.Insert(10))
	require.True(t, s.Insert(30))
	buf := s.data

	// the buffer has a free slot, but only one, so this insert reallocates
	require.True(t, s.Insert(20))

	assert.Equal(t, 6, len(s.data))
	assert.NotSame(t, &buf[0], &s.data[0])
	assert.Equal(t, []int32{10, 20, 30}, s.data[:3])
	assertProper(t, s)
}

func TestCopyFrom_CopiesSentinelTail(t *testing.T) {
	src := New(6)
	src.Insert(1)
	src.Insert(2)

	dst := New(0)
	dst.CopyFrom(src)

	assert.Equal(t, src.data, dst.data)
	assert.NotSame(t, &src.data[0], &dst.data[0])
	assertProper(t, dst)
}
