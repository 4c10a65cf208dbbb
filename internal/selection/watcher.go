package selection

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"

	"github.com/hyperifyio/textselect/internal/chrome"
	"github.com/hyperifyio/textselect/internal/dom"
	"github.com/hyperifyio/textselect/internal/event"
	"github.com/hyperifyio/textselect/internal/textrange"
)

// Handler receives the captured ranges (possibly empty) and the event that
// triggered the capture. The slice is owned by the handler.
type Handler func(ranges []textrange.Normalized, ev event.Event)

// Config configures a Watcher.
type Config struct {
	// OnSelection is called after every qualifying trigger. Defaults to a no-op.
	OnSelection Handler
}

// ErrDetachedRoot is returned when the root element is not part of the document.
var ErrDetachedRoot = errors.New("selection: root element is not attached to the document")

// Watcher captures the selection whenever the primary mouse button is
// released inside root and reports it to OnSelection. Selections made inside
// the tool's own chrome are reported as empty.
type Watcher struct {
	doc      *dom.Document
	root     *html.Node
	capturer *Capturer
	bus      *event.Dispatcher
	sub      event.Subscription
	onSel    Handler
	once     sync.Once
}

// New binds a watcher on root.
func New(doc *dom.Document, root *html.Node, src Source, bus *event.Dispatcher, cfg Config) (*Watcher, error) {
	if root == nil || !doc.Contains(root) {
		return nil, ErrDetachedRoot
	}
	w := &Watcher{
		doc:      doc,
		root:     root,
		capturer: NewCapturer(doc, root, src),
		bus:      bus,
		onSel:    cfg.OnSelection,
	}
	if w.onSel == nil {
		w.onSel = func([]textrange.Normalized, event.Event) {}
	}
	w.sub = bus.Bind(root, event.MouseUp, w.onTrigger)
	return w, nil
}

// Capture returns the current selection without going through an event.
func (w *Watcher) Capture() ([]textrange.Normalized, error) { return w.capturer.Capture() }

// Teardown unbinds the trigger. Later calls do nothing.
func (w *Watcher) Teardown() {
	w.once.Do(func() {
		w.bus.Unbind(w.sub)
	})
}

func (w *Watcher) onTrigger(ev event.Event) {
	if ev.Button != event.ButtonPrimary {
		return
	}
	ranges, err := w.capturer.Capture()
	if err != nil {
		log.Error().Err(err).Msg("selection capture failed")
		return
	}
	if len(ranges) == 0 {
		w.onSel([]textrange.Normalized{}, ev)
		return
	}
	if chrome.Suppressed(w.doc, ranges) {
		log.Debug().Int("ranges", len(ranges)).Msg("selection inside tool chrome suppressed")
		w.onSel([]textrange.Normalized{}, ev)
		return
	}
	w.onSel(ranges, ev)
}
