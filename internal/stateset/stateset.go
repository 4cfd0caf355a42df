// Package stateset provides a sparse set of NFA state IDs.
//
// A sparse set gives O(1) insertion, membership testing, and clearing while
// still supporting ordered iteration over its dense backing array. The
// regex-to-DFA pipeline builds many of these sets during ε-closure and move
// computations, so the O(1) clear (no zeroing of the backing arrays) matters
// far more here than it would for a one-off collection.
package stateset

// Set is a sparse set over the bounded universe [0, capacity).
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New creates a sparse set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Inserting an already-present value is a no-op.
func (s *Set) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is a member of the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1) time; it does not shrink the backing arrays.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int {
	return int(s.size)
}

// IsEmpty reports whether the set has no elements.
func (s *Set) IsEmpty() bool {
	return s.size == 0
}

// Values returns the set's members. The slice is valid only until the next
// mutating call on s.
func (s *Set) Values() []uint32 {
	return s.dense[:s.size]
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := &Set{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense), cap(s.dense)),
		size:   s.size,
	}
	copy(c.sparse, s.sparse)
	copy(c.dense, s.dense)
	return c
}

// Sorted returns the set's members in ascending order. Used when a stable,
// hashable key is needed for a set of state IDs (DFA state interning).
func (s *Set) Sorted() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	// insertion sort: these sets are small (bounded by one rule's NFA size)
	for i := 1; i < len(out); i++ {
		v := out[i]
		j := i - 1
		for j >= 0 && out[j] > v {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = v
	}
	return out
}
