/*
Package textfile provides API helpers to load the words of UTF-8 text files as
flat sets.

Files are read in line-aligned fragments by a loader goroutine, which
broadcasts every fragment as soon as it is read. Splitting into words happens
on the calling goroutine while the loader reads ahead, preserving a
synchronous `Load` API.

Words are delimited by the line-break opportunities of UAX #14. Leading and
trailing white space and punctuation is stripped from every word.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 1KEEN1

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flatset'
func tracer() tracing.Trace {
	return tracing.Select("flatset")
}
