package chrome

import (
	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
	"github.com/hyperifyio/textselect/internal/textrange"
)

// IsOwnChrome reports whether node belongs to the annotation tool's own UI.
// Highlight wrappers are transparent: when node is one, the check starts at
// the first ancestor that is not a wrapper.
func IsOwnChrome(doc *dom.Document, node *html.Node) bool {
	n := node
	for n != nil && doc.MarkerOf(n) == dom.MarkerHighlight {
		n = n.Parent
	}
	for ; n != nil; n = n.Parent {
		if doc.MarkerOf(n) == dom.MarkerChrome {
			return true
		}
	}
	return false
}

// Suppressed reports whether any range's common ancestor is tool chrome. One
// such range suppresses the whole selection.
func Suppressed(doc *dom.Document, ranges []textrange.Normalized) bool {
	for _, r := range ranges {
		if IsOwnChrome(doc, r.CommonAncestor) {
			return true
		}
	}
	return false
}
