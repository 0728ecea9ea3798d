package vector

import "cmp"

// BinarySearch returns the index of value if it is present. Otherwise it
// returns the insertion point, i.e. the index at which value would have to be
// inserted to keep the live range sorted.
//
// Elements are ordered by cmp.Compare, so a NaN sorts before all other floats
// and is equal to itself.
func (v *Vector[T]) BinarySearch(value T) int {
	low, high := 0, v.Len()-1
	for low <= high {
		mid := low + (high-low)/2
		switch c := cmp.Compare(v.store[mid], value); {
		case c == 0:
			return mid
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return low
}

// Find returns the index of value and true, or false if value is not present.
// The index is valid until the next mutation of v.
func (v *Vector[T]) Find(value T) (int, bool) {
	i := v.BinarySearch(value)
	if i < v.Len() && cmp.Compare(v.store[i], value) == 0 {
		return i, true
	}
	return i, false
}

// Insert adds value at its sorted position. If value is already present, the
// vector is left untouched and Insert returns false.
func (v *Vector[T]) Insert(value T) bool {
	ip, found := v.Find(value)
	if found {
		return false
	}
	v.ensureCapacity(v.size + 1)
	// shift [ip, size) one slot to the right, highest index first
	for i := v.size; i > ip; i-- {
		v.store[i] = v.store[i-1]
	}
	v.store[ip] = value
	v.size++
	return true
}

// Erase removes value and returns the index where it has been stored, and
// true. If value is not present, Erase returns false.
//
// After a successful erase the index addresses the element that slid into
// the erased slot, if index < Len(). If the erased element has been the last
// one, index equals Len().
func (v *Vector[T]) Erase(value T) (int, bool) {
	i, found := v.Find(value)
	if !found {
		return i, false
	}
	copy(v.store[i:v.size-1], v.store[i+1:v.size])
	v.size--
	var zero T
	v.store[v.size] = zero
	return i, true
}

// Merge replaces the contents of v with the sorted union of v and other.
// Both vectors have to be sorted and free of duplicates. The capacity of the
// result equals its size.
//
// Merging a vector with itself, or with nil, leaves it unchanged.
func (v *Vector[T]) Merge(other *Vector[T]) {
	if other == nil || v == other {
		return
	}
	n, m := v.size, other.size
	temp := make([]T, n+m)
	i, j, k := 0, 0, 0
	for i < n && j < m {
		switch c := cmp.Compare(v.store[i], other.store[j]); {
		case c < 0:
			temp[k] = v.store[i]
			i++
		case c > 0:
			temp[k] = other.store[j]
			j++
		default:
			temp[k] = v.store[i]
			i++
			j++
		}
		k++
	}
	k += copy(temp[k:], v.store[i:n])
	k += copy(temp[k:], other.store[j:m])
	tracer().Debugf("vector: merged %d + %d elements into %d", n, m, k)
	v.store = temp[:k:k]
	v.size = k
	v.capacity = k
}
