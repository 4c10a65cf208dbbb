package selection

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/dom"
	"github.com/hyperifyio/textselect/internal/textrange"
)

// Capturer turns the current native selection into normalized ranges
// limited to a root element.
type Capturer struct {
	doc  *dom.Document
	root *html.Node
	src  Source
}

// NewCapturer binds a capturer to a document, limiting root and selection source.
func NewCapturer(doc *dom.Document, root *html.Node, src Source) *Capturer {
	return &Capturer{doc: doc, root: root, src: src}
}

// Capture reads the selection, splits ranges that cross page boundaries and
// normalizes every piece. An empty or collapsed selection yields no ranges
// and no error. Pieces with no content inside the root are dropped. A
// *textrange.StructuralError aborts the whole capture.
func (c *Capturer) Capture() ([]textrange.Normalized, error) {
	snap := c.src.Snapshot()
	if snap.Collapsed() {
		return nil, nil
	}
	var out []textrange.Normalized
	for i, r := range snap.Ranges {
		if r.Collapsed() {
			continue
		}
		pieces, err := textrange.Split(c.doc, r)
		if err != nil {
			return nil, fmt.Errorf("range %d: %w", i, err)
		}
		for _, p := range pieces {
			n, err := textrange.Normalize(p, c.root)
			if errors.Is(err, textrange.ErrNoContent) {
				log.Debug().Int("range", i).Msg("selection piece has no content inside root")
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("range %d: %w", i, err)
			}
			out = append(out, n)
		}
	}
	log.Debug().Int("raw", len(snap.Ranges)).Int("normalized", len(out)).Msg("captured selection")
	return out, nil
}
