/*
Package vector provides a growable array of ordered elements, kept sorted in
strictly ascending order and free of duplicates.

A Vector is the storage backend for flat sets. Lookup is by binary search;
insertion and deletion shift the tail of the live range. Capacity grows
geometrically (doubling by default) and is allocated lazily: an empty vector
does not own storage until the first insert.

Indices returned by Find, Erase and BinarySearch address the live range and
are valid only until the next mutation of the vector (Insert, Erase, Merge,
Assign, MoveFrom or Move).

Vectors are not safe for concurrent use.

# BSD License

Copyright (c) 1KEEN1

Please refer to the License file for details.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flatset'.
func tracer() tracing.Trace {
	return tracing.Select("flatset")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
