package dom

import (
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func Walk(n *html.Node, fn func(*html.Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// Contains reports whether n is ancestor or equal to other.
func Contains(n, other *html.Node) bool {
	for cur := other; cur != nil; cur = cur.Parent {
		if cur == n {
			return true
		}
	}
	return false
}

// IsText reports whether n is a text node.
func IsText(n *html.Node) bool { return n != nil && n.Type == html.TextNode }

// Length is the boundary length of n: runes for text nodes, children otherwise.
func Length(n *html.Node) int {
	if n == nil {
		return 0
	}
	if n.Type == html.TextNode {
		return utf8.RuneCountInString(n.Data)
	}
	return ChildCount(n)
}

// ChildCount returns the number of direct children of n.
func ChildCount(n *html.Node) int {
	c := 0
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c++
	}
	return c
}

// ChildAt returns the i-th child of n, or nil when out of range.
func ChildAt(n *html.Node, i int) *html.Node {
	if i < 0 {
		return nil
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if i == 0 {
			return ch
		}
		i--
	}
	return nil
}

// ChildIndex returns the position of n among its siblings.
func ChildIndex(n *html.Node) int {
	i := 0
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		i++
	}
	return i
}

// CommonAncestor returns the nearest node containing both a and b, or nil if
// they live in different trees.
func CommonAncestor(a, b *html.Node) *html.Node {
	for cur := a; cur != nil; cur = cur.Parent {
		if Contains(cur, b) {
			return cur
		}
	}
	return nil
}

// Precedes reports whether a comes before b in document order. An ancestor
// precedes its descendants.
func Precedes(a, b *html.Node) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	pa, pb := pathTo(a), pathTo(b)
	if pa[0] != pb[0] {
		return false
	}
	i := 0
	for i < len(pa) && i < len(pb) && pa[i] == pb[i] {
		i++
	}
	switch {
	case i == len(pa):
		return true
	case i == len(pb):
		return false
	}
	return ChildIndex(pa[i]) < ChildIndex(pb[i])
}

func pathTo(n *html.Node) []*html.Node {
	var rev []*html.Node
	for cur := n; cur != nil; cur = cur.Parent {
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

func isContent(n *html.Node) bool { return IsText(n) && n.Data != "" }

// FirstText returns the first non-empty text node inside n (inclusive).
func FirstText(n *html.Node) *html.Node {
	var found *html.Node
	Walk(n, func(cur *html.Node) bool {
		if found != nil {
			return false
		}
		if isContent(cur) {
			found = cur
			return false
		}
		return true
	})
	return found
}

// LastText returns the last non-empty text node inside n (inclusive).
func LastText(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if isContent(n) {
		return n
	}
	for c := n.LastChild; c != nil; c = c.PrevSibling {
		if t := LastText(c); t != nil {
			return t
		}
	}
	return nil
}

// FirstTextAfter returns the first non-empty text node following the whole
// subtree of n in document order.
func FirstTextAfter(n *html.Node) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		for s := cur.NextSibling; s != nil; s = s.NextSibling {
			if t := FirstText(s); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastTextBefore returns the last non-empty text node that precedes n in
// document order and is not inside n.
func LastTextBefore(n *html.Node) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		for s := cur.PrevSibling; s != nil; s = s.PrevSibling {
			if t := LastText(s); t != nil {
				return t
			}
		}
	}
	return nil
}

// TextNodes lists the non-empty text nodes from start to end inclusive, in
// document order.
func TextNodes(start, end *html.Node) []*html.Node {
	var out []*html.Node
	for cur := start; cur != nil; cur = FirstTextAfter(cur) {
		out = append(out, cur)
		if cur == end {
			return out
		}
	}
	return out
}
