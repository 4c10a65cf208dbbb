package app

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "os"
    "strings"
    "time"

    "github.com/rs/zerolog/log"
    "golang.org/x/net/html"
    "golang.org/x/text/unicode/norm"
    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/textselect/internal/dom"
    "github.com/hyperifyio/textselect/internal/event"
    "github.com/hyperifyio/textselect/internal/selection"
    "github.com/hyperifyio/textselect/internal/textrange"
)

// ErrRootNotFound is returned when the root selector matches nothing.
var ErrRootNotFound = errors.New("root element not found")

type App struct {
    cfg  Config
    doc  *dom.Document
    root *html.Node
}

// Report is the output of one replayed selection.
type Report struct {
    Document string  `json:"document" yaml:"document"`
    Root     string  `json:"root" yaml:"root"`
    Ranges   []Quote `json:"ranges" yaml:"ranges"`
}

// Quote is a delivered range, serialized relative to the root element.
type Quote struct {
    textrange.Serialized `yaml:",inline"`
    Text                 string `json:"text" yaml:"text"`
}

func New(ctx context.Context, cfg Config) (*App, error) {
    if err := ctx.Err(); err != nil {
        return nil, err
    }
    f, err := os.Open(cfg.DocPath)
    if err != nil {
        return nil, fmt.Errorf("open document: %w", err)
    }
    defer f.Close()
    doc, err := dom.Parse(f, cfg.domOptions())
    if err != nil {
        return nil, err
    }
    sel := strings.TrimSpace(cfg.RootSelector)
    if sel == "" { sel = rootSelectorDefault }
    root := doc.Query(sel)
    if root == nil {
        return nil, fmt.Errorf("%w: %q", ErrRootNotFound, sel)
    }
    log.Debug().Str("doc", cfg.DocPath).Str("root", sel).Msg("document loaded")
    return &App{cfg: cfg, doc: doc, root: root}, nil
}

func (a *App) Close() {
    // nothing yet
}

func (cfg Config) domOptions() dom.Options {
    return dom.Options{
        ViewerClass:    cfg.ViewerClass,
        PageClass:      cfg.PageClass,
        PageNumberAttr: cfg.PageNumberAttr,
        TextLayerClass: cfg.TextLayerClass,
        ChromePrefix:   cfg.ChromePrefix,
        HighlightClass: cfg.HighlightClass,
    }
}

func (a *App) Run(ctx context.Context) error {
    if err := ctx.Err(); err != nil {
        return err
    }
    req, err := LoadRequest(a.cfg.SelectionPath)
    if err != nil {
        return fmt.Errorf("read selection: %w", err)
    }
    report, err := a.Replay(req)
    if err != nil {
        return err
    }
    out := io.Writer(os.Stdout)
    if p := strings.TrimSpace(a.cfg.OutputPath); p != "" && p != "-" {
        f, err := os.Create(p)
        if err != nil {
            return fmt.Errorf("create output: %w", err)
        }
        defer f.Close()
        out = f
    }
    if err := writeReport(out, report, a.cfg.Format); err != nil {
        return fmt.Errorf("write output: %w", err)
    }
    log.Info().Int("ranges", len(report.Ranges)).Str("out", a.cfg.OutputPath).Msg("selection captured")
    return nil
}

// Replay rebuilds the recorded selection, releases the mouse over it and
// reports what the watcher delivers.
func (a *App) Replay(req Request) (Report, error) {
    report := Report{Document: a.cfg.DocPath, Root: a.cfg.RootSelector, Ranges: []Quote{}}
    if report.Root == "" { report.Root = rootSelectorDefault }

    native := &selection.Native{}
    for i, s := range req.Ranges {
        raw, err := textrange.Resolve(a.doc.Root, s)
        if err != nil {
            return report, fmt.Errorf("selection range %d: %w", i, err)
        }
        native.Add(raw)
    }

    var delivered []textrange.Normalized
    called := false
    bus := event.NewDispatcher()
    w, err := selection.New(a.doc, a.root, native, bus, selection.Config{
        OnSelection: func(ranges []textrange.Normalized, _ event.Event) {
            called = true
            delivered = ranges
        },
    })
    if err != nil {
        return report, err
    }
    defer w.Teardown()

    target, err := a.eventTarget(req, native)
    if err != nil {
        return report, err
    }
    button := event.Button(req.Button)
    if button == event.ButtonNone { button = event.ButtonPrimary }
    bus.Dispatch(event.Event{Type: event.MouseUp, Button: button, Target: target, Time: time.Now()})

    if !called {
        // Structural failures are only logged by the watcher; surface them here.
        if _, err := w.Capture(); err != nil {
            return report, err
        }
        log.Warn().Int("button", int(button)).Msg("mouseup did not trigger a capture")
        return report, nil
    }
    for _, n := range delivered {
        s, err := textrange.Serialize(n, a.root)
        if err != nil {
            return report, err
        }
        report.Ranges = append(report.Ranges, Quote{Serialized: s, Text: norm.NFC.String(n.Text())})
    }
    return report, nil
}

func (a *App) eventTarget(req Request, native *selection.Native) (*html.Node, error) {
    if sel := strings.TrimSpace(req.Target); sel != "" {
        n := a.doc.Query(sel)
        if n == nil {
            return nil, fmt.Errorf("event target %q not found", sel)
        }
        return n, nil
    }
    if snap := native.Snapshot(); len(snap.Ranges) > 0 {
        if end := snap.Ranges[0].End.Node; end != nil {
            if dom.IsText(end) && end.Parent != nil {
                return end.Parent, nil
            }
            return end, nil
        }
    }
    return a.root, nil
}

func writeReport(w io.Writer, r Report, format string) error {
    switch strings.ToLower(strings.TrimSpace(format)) {
    case "yaml", "yml":
        enc := yaml.NewEncoder(w)
        enc.SetIndent(2)
        if err := enc.Encode(r); err != nil {
            return err
        }
        return enc.Close()
    default:
        enc := json.NewEncoder(w)
        enc.SetIndent("", "  ")
        return enc.Encode(r)
    }
}
