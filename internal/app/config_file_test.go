package app

import (
    "os"
    "path/filepath"
    "testing"
)

func TestLoadConfigFile_YAMLAndJSON(t *testing.T) {
    dir := t.TempDir()
    y := filepath.Join(dir, "cfg.yaml")
    if err := os.WriteFile(y, []byte("doc: a.html\nroot: '#main'\nclasses:\n  viewer: pages\n  highlight: hl\nlog:\n  file: out.log\n"), 0o600); err != nil {
        t.Fatalf("write yaml: %v", err)
    }
    fc, err := LoadConfigFile(y)
    if err != nil {
        t.Fatalf("load yaml: %v", err)
    }
    if fc.Doc != "a.html" || fc.Root != "#main" || fc.Classes.Viewer != "pages" || fc.Log.File != "out.log" {
        t.Fatalf("yaml parsed to %+v", fc)
    }

    j := filepath.Join(dir, "cfg.json")
    if err := os.WriteFile(j, []byte(`{"selection":"s.json","format":"yaml"}`), 0o600); err != nil {
        t.Fatalf("write json: %v", err)
    }
    fc, err = LoadConfigFile(j)
    if err != nil {
        t.Fatalf("load json: %v", err)
    }
    if fc.Selection != "s.json" || fc.Format != "yaml" {
        t.Fatalf("json parsed to %+v", fc)
    }

    bad := filepath.Join(dir, "cfg.json")
    if err := os.WriteFile(bad, []byte(`{`), 0o600); err != nil {
        t.Fatalf("write bad: %v", err)
    }
    if _, err := LoadConfigFile(bad); err == nil {
        t.Fatalf("expected parse error")
    }
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
    var fc FileConfig
    fc.Doc = "file.html"
    fc.Root = "#file"
    fc.Format = "yaml"
    fc.Classes.Highlight = "hl"

    cfg := Config{DocPath: "flag.html", RootSelector: rootSelectorDefault, Format: formatDefault}
    ApplyFileConfig(&cfg, fc)
    if cfg.DocPath != "flag.html" {
        t.Fatalf("flag value overwritten: %q", cfg.DocPath)
    }
    if cfg.RootSelector != "#file" || cfg.Format != "yaml" || cfg.HighlightClass != "hl" {
        t.Fatalf("file values not applied: %+v", cfg)
    }
}

func TestValidateConfig(t *testing.T) {
    ok := Config{DocPath: "a.html", SelectionPath: "s.yaml", Format: "json"}
    if err := ValidateConfig(ok); err != nil {
        t.Fatalf("valid config rejected: %v", err)
    }
    bad := []Config{
        {SelectionPath: "s.yaml"},
        {DocPath: "a.html"},
        {DocPath: "a.html", SelectionPath: "s.yaml", Format: "xml"},
        {DocPath: "a.html", SelectionPath: "s.yaml", LogMaxBackups: -1},
    }
    for i, c := range bad {
        if err := ValidateConfig(c); err == nil {
            t.Fatalf("case %d: expected error", i)
        }
    }
}
