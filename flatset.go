package flatset

import (
	"cmp"
	"io"
	"iter"

	"github.com/1KEEN1/FlatSet/vector"
)

// SetError is an error type for the flatset module
type SetError string

func (e SetError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SetError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever a set position is
// greater than or equal to the size of the set.
var ErrIndexOutOfBounds = vector.ErrIndexOutOfBounds

// Set is a set of ordered values, kept in ascending order in a flat array.
//
// The zero value is an empty set ready to use. A nil *Set behaves like an empty
// set for all read-only methods; Insert, Erase and Merge require a non-nil set.
type Set[E cmp.Ordered] struct {
	vec vector.Vector[E]
}

// New creates a set holding the given values.
func New[E cmp.Ordered](values ...E) *Set[E] {
	s := &Set[E]{}
	s.vec.MoveFrom(vector.New[E]())
	for _, v := range values {
		s.vec.Insert(v)
	}
	return s
}

// Insert adds value to the set. It returns false if value has already been
// a member. s must not be nil.
func (s *Set[E]) Insert(value E) bool {
	return s.vec.Insert(value)
}

// Contains reports whether value is a member of s.
func (s *Set[E]) Contains(value E) bool {
	_, found := s.vector().Find(value)
	return found
}

// Erase removes value from s. It returns the position the value has occupied
// and true, or false if value has not been a member.
// The position is valid until the next mutation of s.
func (s *Set[E]) Erase(value E) (int, bool) {
	if s == nil {
		return 0, false
	}
	return s.vec.Erase(value)
}

// Find returns the position of value in s and true, or false if value is not
// a member. The position is valid until the next mutation of s.
func (s *Set[E]) Find(value E) (int, bool) {
	return s.vector().Find(value)
}

// BinarySearch returns the position of value, or the position where value
// would have to be inserted.
func (s *Set[E]) BinarySearch(value E) int {
	return s.vector().BinarySearch(value)
}

// Merge adds all members of other to s. Merging a set with itself is a no-op.
// s must not be nil.
func (s *Set[E]) Merge(other *Set[E]) {
	if other == nil {
		return
	}
	T().Debugf("flatset: merge %d + %d members", s.Len(), other.Len())
	s.vec.Merge(&other.vec)
}

// Equal reports whether s and other have the same members.
func (s *Set[E]) Equal(other *Set[E]) bool {
	return s.vector().Equal(other.vector())
}

// At returns the member at position i, in ascending order.
func (s *Set[E]) At(i int) (E, error) {
	return s.vector().At(i)
}

// Len returns the number of members.
func (s *Set[E]) Len() int {
	return s.vector().Len()
}

// IsEmpty reports whether s has no members.
func (s *Set[E]) IsEmpty() bool {
	return s.Len() == 0
}

// Clone returns a copy of s which does not share storage with s.
func (s *Set[E]) Clone() *Set[E] {
	c := &Set[E]{}
	if s != nil {
		c.vec.Assign(&s.vec)
	}
	return c
}

// Values returns the members of s in ascending order.
func (s *Set[E]) Values() []E {
	return s.vector().Values()
}

// All iterates over the members of s in ascending order.
func (s *Set[E]) All() iter.Seq2[int, E] {
	return s.vector().All()
}

// Backward iterates over the members of s in descending order.
func (s *Set[E]) Backward() iter.Seq2[int, E] {
	return s.vector().Backward()
}

// Print writes the members of s to stdout (for debugging purposes).
func (s *Set[E]) Print() {
	s.vector().Print()
}

// Dump writes the members of s to w, separated by spaces and terminated by
// a newline.
func (s *Set[E]) Dump(w io.Writer) error {
	return s.vector().Dump(w)
}

// Check validates the ordering invariants of s. A nil set is valid.
func (s *Set[E]) Check() error {
	if s == nil {
		return nil
	}
	return s.vec.Check()
}

// vector returns the backing vector of s, or nil for a nil set.
func (s *Set[E]) vector() *vector.Vector[E] {
	if s == nil {
		return nil
	}
	return &s.vec
}
