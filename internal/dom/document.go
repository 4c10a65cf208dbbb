package dom

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Kind classifies structural nodes that matter for pagination.
type Kind int

const (
	KindPlain Kind = iota
	// KindViewer is a paginated container whose element children are pages.
	KindViewer
	KindPage
	KindTextLayer
)

func (k Kind) String() string {
	switch k {
	case KindViewer:
		return "viewer"
	case KindPage:
		return "page"
	case KindTextLayer:
		return "textLayer"
	default:
		return "plain"
	}
}

// Marker tags nodes that belong to the annotation tool itself.
type Marker int

const (
	MarkerNone Marker = iota
	// MarkerChrome marks the tool's own UI (adder, toolbars, editors).
	MarkerChrome
	// MarkerHighlight marks a wrapper inserted around annotated content.
	MarkerHighlight
)

func (m Marker) String() string {
	switch m {
	case MarkerChrome:
		return "chrome"
	case MarkerHighlight:
		return "highlight"
	default:
		return "none"
	}
}

// Options names the classes and attributes used to classify nodes when a
// document is loaded.
type Options struct {
	ViewerClass    string
	PageClass      string
	PageNumberAttr string
	TextLayerClass string
	// ChromePrefix marks any element carrying a class with this prefix as tool chrome.
	ChromePrefix   string
	HighlightClass string
}

// DefaultOptions matches the markup produced by pdf.js viewers and the
// annotator UI.
func DefaultOptions() Options {
	return Options{
		ViewerClass:    "pdfViewer",
		PageClass:      "page",
		PageNumberAttr: "data-page-number",
		TextLayerClass: "textLayer",
		ChromePrefix:   "annotator-",
		HighlightClass: "annotator-hl",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ViewerClass == "" {
		o.ViewerClass = d.ViewerClass
	}
	if o.PageClass == "" {
		o.PageClass = d.PageClass
	}
	if o.PageNumberAttr == "" {
		o.PageNumberAttr = d.PageNumberAttr
	}
	if o.TextLayerClass == "" {
		o.TextLayerClass = d.TextLayerClass
	}
	if o.ChromePrefix == "" {
		o.ChromePrefix = d.ChromePrefix
	}
	if o.HighlightClass == "" {
		o.HighlightClass = d.HighlightClass
	}
	return o
}

// Document is a read-only view over a parsed node tree. Node kinds, markers
// and page numbers are resolved once at construction so that later lookups
// are typed map reads instead of attribute matching.
type Document struct {
	Root *html.Node

	opts    Options
	kinds   map[*html.Node]Kind
	markers map[*html.Node]Marker
	pages   map[*html.Node]int
	ids     map[string]*html.Node
}

// Parse reads HTML from r and classifies the resulting tree.
func Parse(r io.Reader, opts Options) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return New(root, opts), nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// New wraps an existing tree.
func New(root *html.Node, opts Options) *Document {
	d := &Document{
		Root:    root,
		opts:    opts.withDefaults(),
		kinds:   map[*html.Node]Kind{},
		markers: map[*html.Node]Marker{},
		pages:   map[*html.Node]int{},
		ids:     map[string]*html.Node{},
	}
	d.classify(root)
	return d
}

// Options returns the effective classification options.
func (d *Document) Options() Options { return d.opts }

func (d *Document) classify(n *html.Node) {
	if n.Type == html.ElementNode {
		classes := Classes(n)
		switch {
		case hasClass(classes, d.opts.ViewerClass):
			d.kinds[n] = KindViewer
		case hasClass(classes, d.opts.TextLayerClass):
			d.kinds[n] = KindTextLayer
		case hasClass(classes, d.opts.PageClass):
			if v, ok := Attr(n, d.opts.PageNumberAttr); ok {
				if num, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					d.kinds[n] = KindPage
					d.pages[n] = num
				}
			}
		}
		for _, c := range classes {
			if c == d.opts.HighlightClass {
				d.markers[n] = MarkerHighlight
				break
			}
			if strings.HasPrefix(c, d.opts.ChromePrefix) {
				d.markers[n] = MarkerChrome
			}
		}
		if id, ok := Attr(n, "id"); ok && id != "" {
			if _, dup := d.ids[id]; !dup {
				d.ids[id] = n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.classify(c)
	}
}

// Mark attaches a marker to a node created by the tool after load.
func (d *Document) Mark(n *html.Node, m Marker) {
	if n == nil {
		return
	}
	if m == MarkerNone {
		delete(d.markers, n)
		return
	}
	d.markers[n] = m
}

// MarkerOf returns the marker attached to n.
func (d *Document) MarkerOf(n *html.Node) Marker { return d.markers[n] }

// KindOf returns the structural kind of n.
func (d *Document) KindOf(n *html.Node) Kind { return d.kinds[n] }

// PageNumber reports the page number of a page node.
func (d *Document) PageNumber(n *html.Node) (int, bool) {
	num, ok := d.pages[n]
	return num, ok
}

// ElementByID returns the first element carrying the given id.
func (d *Document) ElementByID(id string) *html.Node { return d.ids[id] }

// Contains reports whether n belongs to this document's tree.
func (d *Document) Contains(n *html.Node) bool {
	return n != nil && Contains(d.Root, n)
}

// EnclosingPage walks from n upward (inclusive) to the nearest page node.
func (d *Document) EnclosingPage(n *html.Node) (*html.Node, int, bool) {
	for cur := n; cur != nil; cur = cur.Parent {
		if d.kinds[cur] == KindPage {
			return cur, d.pages[cur], true
		}
	}
	return nil, 0, false
}

// PageByNumber finds the page with the given number below viewer.
func (d *Document) PageByNumber(viewer *html.Node, num int) *html.Node {
	var found *html.Node
	Walk(viewer, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if d.kinds[n] == KindPage && d.pages[n] == num {
			found = n
			return false
		}
		return true
	})
	return found
}

// TextLayer returns the first text layer below page.
func (d *Document) TextLayer(page *html.Node) *html.Node {
	var found *html.Node
	Walk(page, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n != page && d.kinds[n] == KindTextLayer {
			found = n
			return false
		}
		return true
	})
	return found
}

// Query returns the first element matching a minimal selector: "#id",
// ".class" or a tag name.
func (d *Document) Query(sel string) *html.Node {
	sel = strings.TrimSpace(sel)
	switch {
	case sel == "":
		return nil
	case strings.HasPrefix(sel, "#"):
		return d.ElementByID(sel[1:])
	}
	var found *html.Node
	Walk(d.Root, func(n *html.Node) bool {
		if found != nil {
			return false
		}
		if n.Type != html.ElementNode {
			return true
		}
		if strings.HasPrefix(sel, ".") {
			if hasClass(Classes(n), sel[1:]) {
				found = n
			}
		} else if strings.EqualFold(n.Data, sel) {
			found = n
		}
		return found == nil
	})
	return found
}

// Classes splits the class attribute of n.
func Classes(n *html.Node) []string {
	v, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(v)
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(classes []string, want string) bool {
	if want == "" {
		return false
	}
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}
