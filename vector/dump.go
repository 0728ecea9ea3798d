package vector

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Print writes the live range to stdout (for debugging purposes).
func (v *Vector[T]) Print() {
	if err := v.Dump(os.Stdout); err != nil {
		tracer().Errorf("vector: print failed: %v", err)
	}
}

// Dump writes the live range to w, every element followed by a space, and
// terminates the output with a newline. The format is meant for debugging and
// is not stable.
func (v *Vector[T]) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, value := range v.All() {
		fmt.Fprint(bw, value)
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
