package textrange

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
)

// Point is a boundary point: a rune offset into a text node or a child index
// into an element.
type Point struct {
	Node   *html.Node
	Offset int
}

// Raw is a range as reported by the selection source, before normalization.
type Raw struct {
	Start          Point
	End            Point
	CommonAncestor *html.Node
}

// NewRaw builds a Raw range and computes its common ancestor.
func NewRaw(start *html.Node, startOffset int, end *html.Node, endOffset int) Raw {
	return Raw{
		Start:          Point{Node: start, Offset: startOffset},
		End:            Point{Node: end, Offset: endOffset},
		CommonAncestor: dom.CommonAncestor(start, end),
	}
}

// Collapsed reports whether start and end are the same point.
func (r Raw) Collapsed() bool { return r.Start == r.End }

// Normalized is a range whose endpoints are non-empty text nodes inside a
// limiting root. StartOffset is always inside Start, EndOffset is always
// greater than zero and the range is never empty.
type Normalized struct {
	CommonAncestor *html.Node
	Start          *html.Node
	StartOffset    int
	End            *html.Node
	EndOffset      int
}

// Raw converts n back into a raw range.
func (n Normalized) Raw() Raw {
	return Raw{
		Start:          Point{Node: n.Start, Offset: n.StartOffset},
		End:            Point{Node: n.End, Offset: n.EndOffset},
		CommonAncestor: n.CommonAncestor,
	}
}

// TextNodes returns the text nodes touched by the range in document order.
func (n Normalized) TextNodes() []*html.Node { return dom.TextNodes(n.Start, n.End) }

// Text returns the selected text.
func (n Normalized) Text() string {
	nodes := n.TextNodes()
	var b strings.Builder
	for i, t := range nodes {
		r := []rune(t.Data)
		from, to := 0, len(r)
		if i == 0 {
			from = n.StartOffset
		}
		if i == len(nodes)-1 && n.EndOffset < to {
			to = n.EndOffset
		}
		if from > to {
			continue
		}
		b.WriteString(string(r[from:to]))
	}
	return b.String()
}
