package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/1KEEN1/FlatSet"
	"github.com/guiguan/caster"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	tenKb     = 10240
	hundredKb = 102400
)

// subscription buffer of fragments read ahead by the loader
const readAhead = 16

// ErrNotRegular is returned when loading anything but a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// fragment is a piece of a text file, ending at a line boundary (or at the end
// of the file).
type fragment struct {
	text string
	pos  int64 // start position of this fragment within the file
}

// loaded signals that the loader has reached the end of the file.
type loaded struct {
	fragments int
}

// textFile represents a OS file which will be loaded as a set of words.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and returns the set of its words.
func Load(name string) (*flatset.Set[string], error) {
	return LoadContext(context.Background(), name)
}

// LoadContext is like Load, but stops loading as soon as ctx is done.
func LoadContext(ctx context.Context, name string) (*flatset.Set[string], error) {
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	defer tf.cast.Close()
	fragments, ok := tf.cast.Sub(ctx, readAhead)
	if !ok {
		return nil, fmt.Errorf("textfile: cannot subscribe to loader for %s", name)
	}
	go tf.loadFragments(fragmentSize(tf.info.Size()))
	words := flatset.New[string]()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case msg, ok := <-fragments:
			if !ok {
				return nil, fmt.Errorf("textfile: loader for %s stopped early", name)
			}
			switch m := msg.(type) {
			case fragment:
				for _, w := range Words(m.text) {
					words.Insert(w)
				}
			case loaded:
				tracer().Debugf("textfile: loaded %s in %d fragments, %d words",
					name, m.fragments, words.Len())
				return words, nil
			case error:
				return nil, m
			}
		}
	}
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// fragmentSize selects a read size depending on the size of the file.
func fragmentSize(size int64) int {
	switch {
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	default:
		return twoKb
	}
}

// --- File loading goroutine ------------------------------------------------

// loadFragments reads the file front to back and publishes every fragment.
// Fragments are extended to the next newline, so no word is split between two
// fragments. Reading ends with either a `loaded` message or an error.
func (tf *textFile) loadFragments(fragSize int) {
	r := bufio.NewReaderSize(tf.file, fragSize)
	buf := make([]byte, fragSize)
	var pos int64
	count := 0
	for {
		n, err := io.ReadFull(r, buf)
		text := string(buf[:n])
		if err == nil {
			rest, rerr := r.ReadString('\n')
			text += rest
			if rerr != nil && rerr != io.EOF {
				tf.cast.Pub(fmt.Errorf("textfile: error loading fragment at %d: %w", pos, rerr))
				return
			}
		} else if err != io.EOF && err != io.ErrUnexpectedEOF {
			tf.cast.Pub(fmt.Errorf("textfile: error loading fragment at %d: %w", pos, err))
			return
		}
		if len(text) > 0 {
			if !tf.cast.Pub(fragment{text: text, pos: pos}) {
				return // caster closed, client has gone
			}
			pos += int64(len(text))
			count++
		}
		if err != nil {
			tf.cast.Pub(loaded{fragments: count})
			return
		}
	}
}

// --- Words -----------------------------------------------------------------

// Words splits text at line-break opportunities and returns the words, with
// surrounding white space and punctuation removed.
func Words(text string) []string {
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	var words []string
	for segmenter.Next() {
		w := strings.TrimFunc(string(segmenter.Bytes()), isSeparator)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
