package html

import (
	"errors"
	"strings"
	"testing"

	"github.com/1KEEN1/FlatSet"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func TestWordsFromHTML(t *testing.T) {
	input := `<p>Hello <b>brave</b> new <i>world</i>, hello again!</p><script>var x = 1;</script>`
	words, err := WordsFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Hello", "again", "brave", "hello", "new", "world"}
	if diff := cmp.Diff(want, words.Values()); diff != "" {
		t.Fatalf("unexpected word set (-want +got):\n%s", diff)
	}
}

func TestInnerWords(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><div id="x">one two</div><div>two three</div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	words, err := InnerWords(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"one", "three", "two"}, words.Values()); diff != "" {
		t.Fatalf("unexpected word set (-want +got):\n%s", diff)
	}
	if _, err := InnerWords(nil); !errors.Is(err, flatset.ErrIllegalArguments) {
		t.Fatalf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestInlineMarkupKeepsWordsWhole(t *testing.T) {
	input := `<p>hel<b>lo</b> world</p><p>next</p>`
	words, err := WordsFromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"hello", "next", "world"}, words.Values()); diff != "" {
		t.Fatalf("unexpected word set (-want +got):\n%s", diff)
	}
}

func TestBlockElementsSeparateWords(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><ul><li>alpha</li><li>beta</li></ul>gamma<br>delta</body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	words, err := InnerWords(doc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"alpha", "beta", "delta", "gamma"}, words.Values()); diff != "" {
		t.Fatalf("unexpected word set (-want +got):\n%s", diff)
	}
}
