package textrange

import (
	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
)

// Split breaks a range whose common ancestor is a paginated container into
// one range per page it touches, in page order. Any other range is returned
// unchanged. The pieces cover the original span without gaps or overlap; a
// piece that would be empty, such as a continuation starting and ending on a
// page boundary, is not emitted.
func Split(doc *dom.Document, r Raw) ([]Raw, error) {
	const op = "split"
	viewer := r.CommonAncestor
	if doc.KindOf(viewer) != dom.KindViewer {
		return []Raw{r}, nil
	}
	_, first, ok := doc.EnclosingPage(r.Start.Node)
	if !ok {
		return nil, structural(op, "range start is not inside a page")
	}
	_, last, ok := doc.EnclosingPage(r.End.Node)
	if !ok {
		return nil, structural(op, "range end is not inside a page")
	}
	if first == last {
		return []Raw{r}, nil
	}
	if first > last {
		return nil, structural(op, "range starts on page %d after its end page %d", first, last)
	}

	out := make([]Raw, 0, last-first+1)
	cur := r.Start
	layer, err := pageTextLayer(doc, viewer, first)
	if err != nil {
		return nil, err
	}
	for num := first; num < last; num++ {
		out = appendPiece(out, cur, lastPosition(layer))
		if layer, err = pageTextLayer(doc, viewer, num+1); err != nil {
			return nil, err
		}
		cur = firstPosition(layer)
	}
	return appendPiece(out, cur, r.End), nil
}

func pageTextLayer(doc *dom.Document, viewer *html.Node, num int) (*html.Node, error) {
	page := doc.PageByNumber(viewer, num)
	if page == nil {
		return nil, structural("split", "page %d not found in container", num)
	}
	layer := doc.TextLayer(page)
	if layer == nil {
		return nil, structural("split", "page %d has no text layer", num)
	}
	return layer, nil
}

func appendPiece(out []Raw, start, end Point) []Raw {
	piece := Raw{Start: start, End: end, CommonAncestor: dom.CommonAncestor(start.Node, end.Node)}
	if piece.Collapsed() {
		return out
	}
	return append(out, piece)
}

func firstPosition(layer *html.Node) Point {
	if t := dom.FirstText(layer); t != nil {
		return Point{Node: t}
	}
	return Point{Node: layer}
}

func lastPosition(layer *html.Node) Point {
	if t := dom.LastText(layer); t != nil {
		return Point{Node: t, Offset: dom.Length(t)}
	}
	return Point{Node: layer, Offset: dom.ChildCount(layer)}
}
