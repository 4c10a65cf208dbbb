package textrange

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
)

// Serialized is a root-relative, tree-independent form of a range: element
// paths like "/div[1]/p[2]" plus character offsets into each element's text.
type Serialized struct {
	Start       string `json:"start" yaml:"start"`
	StartOffset int    `json:"startOffset" yaml:"startOffset"`
	End         string `json:"end" yaml:"end"`
	EndOffset   int    `json:"endOffset" yaml:"endOffset"`
}

// Serialize expresses n relative to root.
func Serialize(n Normalized, root *html.Node) (Serialized, error) {
	const op = "serialize"
	if !dom.Contains(root, n.Start) || !dom.Contains(root, n.End) {
		return Serialized{}, structural(op, "range is not inside root")
	}
	startEl, endEl := n.Start.Parent, n.End.Parent
	return Serialized{
		Start:       elementPath(root, startEl),
		StartOffset: charOffset(startEl, n.Start, n.StartOffset),
		End:         elementPath(root, endEl),
		EndOffset:   charOffset(endEl, n.End, n.EndOffset),
	}, nil
}

// Resolve maps a serialized range back onto the tree below root.
func Resolve(root *html.Node, s Serialized) (Raw, error) {
	startEl, err := lookupPath(root, s.Start)
	if err != nil {
		return Raw{}, err
	}
	endEl, err := lookupPath(root, s.End)
	if err != nil {
		return Raw{}, err
	}
	start, err := textPosition(startEl, s.StartOffset, false)
	if err != nil {
		return Raw{}, err
	}
	end, err := textPosition(endEl, s.EndOffset, true)
	if err != nil {
		return Raw{}, err
	}
	return NewRaw(start.Node, start.Offset, end.Node, end.Offset), nil
}

func elementPath(root, el *html.Node) string {
	var segs []string
	for cur := el; cur != nil && cur != root; cur = cur.Parent {
		idx := 1
		for s := cur.PrevSibling; s != nil; s = s.PrevSibling {
			if s.Type == html.ElementNode && strings.EqualFold(s.Data, cur.Data) {
				idx++
			}
		}
		segs = append(segs, fmt.Sprintf("%s[%d]", strings.ToLower(cur.Data), idx))
	}
	if len(segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

func lookupPath(root *html.Node, path string) (*html.Node, error) {
	cur := root
	for _, seg := range strings.Split(path, "/") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		tag, idx, err := parseStep(seg)
		if err != nil {
			return nil, structural("resolve", "path %q: %v", path, err)
		}
		var next *html.Node
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
				idx--
				if idx == 0 {
					next = c
					break
				}
			}
		}
		if next == nil {
			return nil, structural("resolve", "path %q: no element for step %q", path, seg)
		}
		cur = next
	}
	return cur, nil
}

func parseStep(seg string) (string, int, error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, 1, nil
	}
	if !strings.HasSuffix(seg, "]") || open == 0 {
		return "", 0, fmt.Errorf("malformed step %q", seg)
	}
	n, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil || n < 1 {
		return "", 0, fmt.Errorf("bad index in step %q", seg)
	}
	return seg[:open], n, nil
}

func textsIn(el *html.Node) []*html.Node {
	first := dom.FirstText(el)
	if first == nil {
		return nil
	}
	return dom.TextNodes(first, dom.LastText(el))
}

func charOffset(el, text *html.Node, offset int) int {
	acc := 0
	for _, t := range textsIn(el) {
		if t == text {
			return acc + offset
		}
		acc += dom.Length(t)
	}
	return acc + offset
}

// textPosition finds the text node holding the given character offset of
// el's text. Offsets that fall on a node boundary resolve to the earlier node
// for end points and to the later node for start points.
func textPosition(el *html.Node, offset int, end bool) (Point, error) {
	texts := textsIn(el)
	acc := 0
	for _, t := range texts {
		l := dom.Length(t)
		if offset < acc+l || (end && offset == acc+l) {
			if offset < acc {
				break
			}
			return Point{Node: t, Offset: offset - acc}, nil
		}
		acc += l
	}
	switch {
	case len(texts) == 0 && offset == 0:
		return Point{Node: el}, nil
	case len(texts) > 0 && offset == acc:
		last := texts[len(texts)-1]
		return Point{Node: last, Offset: dom.Length(last)}, nil
	}
	return Point{}, structural("resolve", "offset %d outside text of length %d", offset, acc)
}
