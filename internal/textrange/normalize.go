package textrange

import (
	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
)

// Normalize anchors both boundary points of r at text content and limits the
// result to root. Endpoints outside root are pulled to root's first or last
// content position. A range with nothing left inside root yields
// ErrNoContent. Normalizing an already normalized range returns it unchanged.
func Normalize(r Raw, root *html.Node) (Normalized, error) {
	const op = "normalize"
	if root == nil {
		return Normalized{}, structural(op, "no limiting root")
	}
	if r.Start.Node == nil || r.End.Node == nil {
		return Normalized{}, structural(op, "range endpoint without node")
	}
	start, startOffset, err := startLeaf(r.Start)
	if err != nil {
		return Normalized{}, err
	}
	end, endOffset, err := endLeaf(r.End)
	if err != nil {
		return Normalized{}, err
	}
	if start == nil || end == nil {
		return Normalized{}, ErrNoContent
	}

	if !dom.Contains(root, start) {
		if !dom.Precedes(start, root) {
			return Normalized{}, ErrNoContent
		}
		start, startOffset = dom.FirstText(root), 0
	}
	if !dom.Contains(root, end) {
		if !dom.Precedes(root, end) {
			return Normalized{}, ErrNoContent
		}
		end = dom.LastText(root)
		endOffset = dom.Length(end)
	}
	if start == nil || end == nil {
		return Normalized{}, ErrNoContent
	}
	if start == end {
		if startOffset >= endOffset {
			return Normalized{}, ErrNoContent
		}
	} else if dom.Precedes(end, start) {
		return Normalized{}, ErrNoContent
	}

	ca := dom.CommonAncestor(start, end)
	if dom.IsText(ca) {
		ca = ca.Parent
	}
	return Normalized{
		CommonAncestor: ca,
		Start:          start,
		StartOffset:    startOffset,
		End:            end,
		EndOffset:      endOffset,
	}, nil
}

// startLeaf resolves a start point to the first content position at or after it.
func startLeaf(p Point) (*html.Node, int, error) {
	n := p.Node
	switch n.Type {
	case html.TextNode:
		l := dom.Length(n)
		if p.Offset < 0 || p.Offset > l {
			return nil, 0, structural("normalize", "start offset %d outside text of length %d", p.Offset, l)
		}
		if p.Offset < l {
			return n, p.Offset, nil
		}
		return dom.FirstTextAfter(n), 0, nil
	case html.ElementNode, html.DocumentNode:
		count := dom.ChildCount(n)
		if p.Offset < 0 || p.Offset > count {
			return nil, 0, structural("normalize", "start offset %d outside %d children of <%s>", p.Offset, count, n.Data)
		}
		if p.Offset == count {
			return dom.FirstTextAfter(n), 0, nil
		}
		child := dom.ChildAt(n, p.Offset)
		if t := dom.FirstText(child); t != nil {
			return t, 0, nil
		}
		return dom.FirstTextAfter(child), 0, nil
	default:
		return dom.FirstTextAfter(n), 0, nil
	}
}

// endLeaf resolves an end point to the last content position before it.
func endLeaf(p Point) (*html.Node, int, error) {
	n := p.Node
	var t *html.Node
	switch n.Type {
	case html.TextNode:
		l := dom.Length(n)
		if p.Offset < 0 || p.Offset > l {
			return nil, 0, structural("normalize", "end offset %d outside text of length %d", p.Offset, l)
		}
		if p.Offset > 0 {
			return n, p.Offset, nil
		}
		t = dom.LastTextBefore(n)
	case html.ElementNode, html.DocumentNode:
		count := dom.ChildCount(n)
		if p.Offset < 0 || p.Offset > count {
			return nil, 0, structural("normalize", "end offset %d outside %d children of <%s>", p.Offset, count, n.Data)
		}
		if p.Offset == 0 {
			t = dom.LastTextBefore(n)
			break
		}
		child := dom.ChildAt(n, p.Offset-1)
		if t = dom.LastText(child); t == nil {
			t = dom.LastTextBefore(child)
		}
	default:
		t = dom.LastTextBefore(n)
	}
	if t == nil {
		return nil, 0, nil
	}
	return t, dom.Length(t), nil
}
