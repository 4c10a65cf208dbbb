package textrange

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
)

func parse(t *testing.T, s string) *dom.Document {
	t.Helper()
	d, err := dom.ParseString(s, dom.Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return d
}

func byID(t *testing.T, d *dom.Document, id string) *html.Node {
	t.Helper()
	n := d.ElementByID(id)
	if n == nil {
		t.Fatalf("no element #%s", id)
	}
	return n
}

// textOf returns the first text node below the element with the given id.
func textOf(t *testing.T, d *dom.Document, id string) *html.Node {
	t.Helper()
	n := dom.FirstText(byID(t, d, id))
	if n == nil {
		t.Fatalf("no text below #%s", id)
	}
	return n
}
