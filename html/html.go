package html

import (
	"io"
	"strings"

	"github.com/1KEEN1/FlatSet"
	"github.com/1KEEN1/FlatSet/textfile"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InnerWords creates a set of the words in the textual content of an HTML
// element and all its descendents. Text is collected the way
//
//	document.getElementById("myNode").innerText
//
// in JavaScript would, except that InnerWords cannot respect CSS styling
// suppressing the visibility of the node's descendents. Inline markup does
// not split words: "hel<b>lo</b>" yields "hello".
func InnerWords(n *html.Node) (*flatset.Set[string], error) {
	if n == nil {
		return nil, flatset.ErrIllegalArguments
	}
	words := flatset.New[string]()
	addWords(words, innerText(n))
	return words, nil
}

// blocks are elements which separate the text before them from the text after them.
var blocks = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Footer: true, atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true,
	atom.Li: true, atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true,
	atom.Pre: true, atom.Section: true, atom.Table: true, atom.Td: true,
	atom.Th: true, atom.Tr: true, atom.Ul: true,
}

func innerText(n *html.Node) string {
	var b strings.Builder
	gatherText(n, &b)
	return b.String()
}

func gatherText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	case html.TextNode:
		b.WriteString(n.Data)
		return
	}
	block := n.Type == html.ElementNode && blocks[n.DataAtom]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		gatherText(c, b)
	}
	if block {
		b.WriteByte('\n')
	}
}

func addWords(words *flatset.Set[string], text string) {
	for _, w := range textfile.Words(text) {
		words.Insert(w)
	}
}

// WordsFromHTML creates a set of the words in the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts the
// pure text.
func WordsFromHTML(input io.Reader) (*flatset.Set[string], error) {
	if input == nil {
		return nil, flatset.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	for _, n := range nodes {
		gatherText(n, &b)
	}
	words := flatset.New[string]()
	addWords(words, b.String())
	return words, nil
}
