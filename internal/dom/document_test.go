package dom

import (
	"testing"

	"golang.org/x/net/html"
)

const viewerHTML = `<html><body>
<div id="viewer" class="pdfViewer">
  <div class="page" data-page-number="1"><div class="textLayer"><span>one</span><span>uno</span></div></div>
  <div class="page" data-page-number="2"><div class="textLayer"><span>two</span></div></div>
  <div class="page" data-page-number="3"><div class="canvasWrapper"></div><div class="textLayer"><span>three</span></div></div>
</div>
<div id="adder" class="annotator-adder"><button>Annotate</button></div>
<p id="para">plain <span class="annotator-hl annotator-hl-temporary">marked</span> text</p>
</body></html>`

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	d, err := ParseString(s, Options{})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return d
}

func TestClassify_KindsAndPages(t *testing.T) {
	d := mustParse(t, viewerHTML)
	viewer := d.ElementByID("viewer")
	if viewer == nil || d.KindOf(viewer) != KindViewer {
		t.Fatalf("expected viewer kind, got %v", d.KindOf(viewer))
	}
	for num := 1; num <= 3; num++ {
		page := d.PageByNumber(viewer, num)
		if page == nil {
			t.Fatalf("page %d not found", num)
		}
		if got, ok := d.PageNumber(page); !ok || got != num {
			t.Fatalf("page number = %d,%v want %d", got, ok, num)
		}
		layer := d.TextLayer(page)
		if layer == nil || d.KindOf(layer) != KindTextLayer {
			t.Fatalf("page %d: missing text layer", num)
		}
	}
	if d.PageByNumber(viewer, 4) != nil {
		t.Fatalf("did not expect page 4")
	}
}

func TestClassify_Markers(t *testing.T) {
	d := mustParse(t, viewerHTML)
	if m := d.MarkerOf(d.ElementByID("adder")); m != MarkerChrome {
		t.Fatalf("adder marker = %v, want chrome", m)
	}
	hl := d.ElementByID("para").FirstChild.NextSibling
	if m := d.MarkerOf(hl); m != MarkerHighlight {
		t.Fatalf("highlight marker = %v, want highlight", m)
	}
	if m := d.MarkerOf(d.ElementByID("para")); m != MarkerNone {
		t.Fatalf("para marker = %v, want none", m)
	}
}

func TestMark_AttachesAndClears(t *testing.T) {
	d := mustParse(t, viewerHTML)
	para := d.ElementByID("para")
	d.Mark(para, MarkerChrome)
	if d.MarkerOf(para) != MarkerChrome {
		t.Fatalf("expected chrome after Mark")
	}
	d.Mark(para, MarkerNone)
	if d.MarkerOf(para) != MarkerNone {
		t.Fatalf("expected marker cleared")
	}
}

func TestEnclosingPage(t *testing.T) {
	d := mustParse(t, viewerHTML)
	viewer := d.ElementByID("viewer")
	text := FirstText(d.PageByNumber(viewer, 2))
	_, num, ok := d.EnclosingPage(text)
	if !ok || num != 2 {
		t.Fatalf("enclosing page = %d,%v want 2", num, ok)
	}
	if _, _, ok := d.EnclosingPage(d.ElementByID("para")); ok {
		t.Fatalf("para should not be inside a page")
	}
}

func TestQuery(t *testing.T) {
	d := mustParse(t, viewerHTML)
	if n := d.Query("#para"); n == nil || n.Data != "p" {
		t.Fatalf("query by id failed")
	}
	if n := d.Query(".pdfViewer"); n != d.ElementByID("viewer") {
		t.Fatalf("query by class failed")
	}
	if n := d.Query("button"); n == nil || n.Type != html.ElementNode {
		t.Fatalf("query by tag failed")
	}
	if d.Query("") != nil {
		t.Fatalf("empty selector should match nothing")
	}
}

func TestCustomOptions(t *testing.T) {
	d, err := ParseString(`<div class="pages"><section class="sheet" data-n="7"><div class="txt">x</div></section></div>`,
		Options{ViewerClass: "pages", PageClass: "sheet", PageNumberAttr: "data-n", TextLayerClass: "txt"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	viewer := d.Query(".pages")
	page := d.PageByNumber(viewer, 7)
	if page == nil || d.TextLayer(page) == nil {
		t.Fatalf("custom page classification failed")
	}
}
