package vector

import (
	"cmp"
	"fmt"
)

// Check validates the structural invariants of v: the live range fits into
// the capacity, allocated storage matches the capacity, and live elements are
// strictly ascending.
//
// Check is intended to be used in tests.
func (v *Vector[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInvariant)
	}
	if v.size < 0 || v.size > v.capacity {
		return fmt.Errorf("%w: size %d exceeds capacity %d", ErrInvariant, v.size, v.capacity)
	}
	if !v.allocated() {
		if v.size != 0 {
			return fmt.Errorf("%w: %d live elements without storage", ErrInvariant, v.size)
		}
		return nil
	}
	if len(v.store) != v.capacity {
		return fmt.Errorf("%w: storage length %d does not match capacity %d",
			ErrInvariant, len(v.store), v.capacity)
	}
	for i := 1; i < v.size; i++ {
		if !cmp.Less(v.store[i-1], v.store[i]) {
			return fmt.Errorf("%w: elements at %d and %d not strictly ascending (%v, %v)",
				ErrInvariant, i-1, i, v.store[i-1], v.store[i])
		}
	}
	return nil
}
