/*
Package flatset offers sets of ordered values, stored flat in a sorted array.

Flat Sets

A flat set keeps its members in a single contiguous, sorted buffer instead of
a hash table or a tree of nodes. Lookups are binary searches, iteration is a
walk over an array in ascending order, and the union of two sets is a linear
merge. Insertion and deletion shift the tail of the buffer, which makes flat
sets a good fit for sets which are read much more often than they are
modified, and which are small to medium sized.

The ordering of members is the natural ordering of the element type, as
defined by cmp.Ordered. There is no custom comparator.

Storage is handled by package vector. Indices handed out by Find, Erase and
BinarySearch stay valid only until the next mutation of the set.

Sets are not safe for concurrent use. Clients which share a set between
goroutines have to guard every operation with a lock.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 1KEEN1

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package flatset

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'flatset'.
func T() tracing.Trace {
	return tracing.Select("flatset")
}
