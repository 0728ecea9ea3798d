package vector

import (
	"cmp"
	"iter"
)

// Vector is a growable array of ordered elements.
//
// Elements in the live range [0, Len()) are kept in strictly ascending order
// by Insert, Erase and Merge. The zero value is an empty vector without
// storage and is ready to use.
type Vector[T cmp.Ordered] struct {
	cfg      Config
	store    []T // nil until first use; otherwise len(store) == capacity
	size     int // live elements are store[:size]
	capacity int
}

// New creates an empty vector with a (not yet allocated) capacity of 1.
func New[T cmp.Ordered]() *Vector[T] {
	return &Vector[T]{capacity: 1}
}

// NewWithConfig creates an empty vector with a validated growth configuration.
func NewWithConfig[T cmp.Ordered](cfg Config) (*Vector[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Vector[T]{cfg: cfg.normalized(), capacity: 1}, nil
}

// Make creates a vector holding n zero-valued elements, with capacity n+1.
//
// For n > 1 the live range contains duplicates; clients are responsible for
// overwriting it before the vector is used as an ordered set.
func Make[T cmp.Ordered](n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	return &Vector[T]{
		store:    make([]T, n+1),
		size:     n,
		capacity: n + 1,
	}
}

// From creates a vector and inserts all values. Duplicates are dropped and the
// values may come in any order.
func From[T cmp.Ordered](values ...T) *Vector[T] {
	v := New[T]()
	for _, value := range values {
		v.Insert(value)
	}
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the capacity of the vector, whether allocated or not.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

func (v *Vector[T]) allocated() bool {
	return v.store != nil
}

// Clone returns a deep copy of v. The copy has v's capacity and does not
// share storage with v.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	c := &Vector[T]{cfg: v.cfg, size: v.size, capacity: v.capacity}
	if v.allocated() {
		c.store = make([]T, v.capacity)
		copy(c.store, v.store[:v.size])
	}
	return c
}

// Move transfers the storage of v to a new vector. Afterwards v is empty, with
// capacity 0 and no storage, and may be used again.
func (v *Vector[T]) Move() *Vector[T] {
	if v == nil {
		return nil
	}
	moved := &Vector[T]{cfg: v.cfg}
	moved.take(v)
	return moved
}

// Assign replaces the contents of v with a deep copy of other.
// Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	if other == nil {
		*v = Vector[T]{cfg: v.cfg}
		return
	}
	c := other.Clone()
	c.cfg = v.cfg
	*v = *c
}

// MoveFrom replaces the contents of v with the storage of other, leaving other
// empty. Moving a vector onto itself is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if other == nil {
		*v = Vector[T]{cfg: v.cfg}
		return
	}
	v.take(other)
}

func (v *Vector[T]) take(other *Vector[T]) {
	v.store, v.size, v.capacity = other.store, other.size, other.capacity
	other.store, other.size, other.capacity = nil, 0, 0
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.Len() {
		return zero, ErrIndexOutOfBounds
	}
	return v.store[i], nil
}

// Equal reports whether v and other hold the same elements in the same order.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if cmp.Compare(v.store[i], other.store[i]) != 0 {
			return false
		}
	}
	return true
}

// Values returns a copy of the live range.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.Len())
	if v.Len() > 0 {
		copy(out, v.store[:v.size])
	}
	return out
}

// All iterates over the live range in ascending order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.store[i]) {
				return
			}
		}
	}
}

// Backward iterates over the live range in descending order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.store[i]) {
				return
			}
		}
	}
}

// --- Growth ----------------------------------------------------------------

// ensureCapacity makes sure storage is allocated with room for n elements.
func (v *Vector[T]) ensureCapacity(n int) {
	c := max(v.capacity, 1)
	for c < n {
		c = v.cfg.grow(c)
	}
	if v.allocated() && c == v.capacity {
		return
	}
	v.resize(c)
}

// resize moves the live range to new storage of capacity c.
// The new storage is fully populated before the old one is dropped.
func (v *Vector[T]) resize(c int) {
	assert(c >= v.size, "resize below live size")
	if v.allocated() {
		tracer().Debugf("vector: resize %d -> %d (size=%d)", v.capacity, c, v.size)
	}
	store := make([]T, c)
	copy(store, v.store[:v.size])
	v.store = store
	v.capacity = c
}
