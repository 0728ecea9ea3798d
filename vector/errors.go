package vector

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	// ErrInvalidConfig signals an invalid growth configuration.
	ErrInvalidConfig = errors.New("vector: invalid configuration")
	// ErrInvariant signals a violation of the sortedness or capacity invariants.
	ErrInvariant = errors.New("vector: invariant violated")
)
