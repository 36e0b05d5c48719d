package html

import (
	"io"

	"github.com/npillmayer/folds"
	"golang.org/x/net/html"
)

// InnerText creates a fragment sequence for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
//
// The fragment organization of the resulting sequence reflects the
// hierarchy of the element node's descendents: one fragment per text node.
func InnerText(n *html.Node) (folds.Sequence[folds.Fragment], error) {
	if n == nil {
		return nil, folds.ErrIllegalArguments
	}
	b := folds.NewBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Sequence(), nil
}

// TextFromHTML creates a fragment sequence from the textual content of an
// HTML fragment. It does no interpretation of layout and styling, but
// extracts the pure text.
func TextFromHTML(input io.Reader) (folds.Sequence[folds.Fragment], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := folds.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return nil, err
		}
	}
	return b.Sequence(), nil
}

func collectText(n *html.Node, b *folds.Builder) error {
	if n.Type == html.TextNode {
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}
