package textrange

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSerialize_PathsAndOffsets(t *testing.T) {
	d := parse(t, plainHTML)
	root := byID(t, d, "root")
	n, err := Normalize(NewRaw(textOf(t, d, "p1"), 4, textOf(t, d, "b"), 2), root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	got, err := Serialize(n, root)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := Serialized{Start: "/p[1]", StartOffset: 4, End: "/p[2]/b[1]", EndOffset: 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("serialized mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_RoundTrip(t *testing.T) {
	d := parse(t, plainHTML)
	root := byID(t, d, "root")
	orig, err := Normalize(NewRaw(textOf(t, d, "p1"), 2, byID(t, d, "p2"), 3), root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	s, err := Serialize(orig, root)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	raw, err := Resolve(root, s)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	back, err := Normalize(raw, root)
	if err != nil {
		t.Fatalf("normalize resolved: %v", err)
	}
	if back != orig {
		t.Fatalf("round trip mismatch: %q vs %q", back.Text(), orig.Text())
	}
}

func TestResolve_ContainerOffsets(t *testing.T) {
	d := parse(t, plainHTML)
	root := byID(t, d, "root")
	// "second bold tail": offset 7 is the boundary between "second " and "bold"
	raw, err := Resolve(root, Serialized{Start: "/p[2]", StartOffset: 7, End: "/p[2]", EndOffset: 7})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if raw.Start.Node.Data != "bold" || raw.Start.Offset != 0 {
		t.Fatalf("start = %q@%d, want bold@0", raw.Start.Node.Data, raw.Start.Offset)
	}
	if raw.End.Node.Data != "second " || raw.End.Offset != 7 {
		t.Fatalf("end = %q@%d, want second@7", raw.End.Node.Data, raw.End.Offset)
	}
}

func TestResolve_Errors(t *testing.T) {
	d := parse(t, plainHTML)
	root := byID(t, d, "root")
	cases := []Serialized{
		{Start: "/p[9]", End: "/p[1]", EndOffset: 1},
		{Start: "/p[x]", End: "/p[1]", EndOffset: 1},
		{Start: "/p[1]", StartOffset: 100, End: "/p[1]", EndOffset: 1},
		{Start: "/p[1]", StartOffset: -1, End: "/p[1]", EndOffset: 1},
	}
	for i, s := range cases {
		if _, err := Resolve(root, s); !IsStructural(err) {
			t.Fatalf("case %d: err = %v, want structural", i, err)
		}
	}
}

func TestText_Unicode(t *testing.T) {
	d := parse(t, `<div id="root"><p id="p">héllo wörld</p></div>`)
	root := byID(t, d, "root")
	text := textOf(t, d, "p")
	n, err := Normalize(NewRaw(text, 6, text, 11), root)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got := n.Text(); got != "wörld" {
		t.Fatalf("text = %q, want wörld", got)
	}
}
