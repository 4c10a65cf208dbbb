package app

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema.
// Nested sections map naturally to flags/env.
type FileConfig struct {
    Doc       string `yaml:"doc" json:"doc"`
    Selection string `yaml:"selection" json:"selection"`
    Root      string `yaml:"root" json:"root"`
    Output    string `yaml:"output" json:"output"`
    Format    string `yaml:"format" json:"format"`
    Verbose   bool   `yaml:"verbose" json:"verbose"`

    Classes struct {
        Viewer     string `yaml:"viewer" json:"viewer"`
        Page       string `yaml:"page" json:"page"`
        PageNumber string `yaml:"pageNumberAttr" json:"pageNumberAttr"`
        TextLayer  string `yaml:"textLayer" json:"textLayer"`
        Chrome     string `yaml:"chromePrefix" json:"chromePrefix"`
        Highlight  string `yaml:"highlight" json:"highlight"`
    } `yaml:"classes" json:"classes"`

    Log struct {
        File       string `yaml:"file" json:"file"`
        MaxSizeMB  int    `yaml:"maxSizeMB" json:"maxSizeMB"`
        MaxBackups int    `yaml:"maxBackups" json:"maxBackups"`
    } `yaml:"log" json:"log"`
}

const (
    rootSelectorDefault = "body"
    formatDefault       = "json"
)

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
    var fc FileConfig
    b, err := os.ReadFile(path)
    if err != nil {
        return fc, err
    }
    switch ext := filepath.Ext(path); ext {
    case ".yaml", ".yml":
        if err := yaml.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse yaml: %w", err)
        }
    case ".json":
        if err := json.Unmarshal(b, &fc); err != nil {
            return fc, fmt.Errorf("parse json: %w", err)
        }
    default:
        // Try YAML then JSON
        if err := yaml.Unmarshal(b, &fc); err != nil {
            if jerr := json.Unmarshal(b, &fc); jerr != nil {
                return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
            }
        }
    }
    return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset or still at their flag default.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
    if cfg == nil { return }

    if cfg.DocPath == "" && fc.Doc != "" { cfg.DocPath = fc.Doc }
    if cfg.SelectionPath == "" && fc.Selection != "" { cfg.SelectionPath = fc.Selection }
    if (cfg.RootSelector == "" || cfg.RootSelector == rootSelectorDefault) && fc.Root != "" { cfg.RootSelector = fc.Root }
    if cfg.OutputPath == "" && fc.Output != "" { cfg.OutputPath = fc.Output }
    if (cfg.Format == "" || cfg.Format == formatDefault) && fc.Format != "" { cfg.Format = fc.Format }
    if !cfg.Verbose && fc.Verbose { cfg.Verbose = true }

    if cfg.ViewerClass == "" { cfg.ViewerClass = fc.Classes.Viewer }
    if cfg.PageClass == "" { cfg.PageClass = fc.Classes.Page }
    if cfg.PageNumberAttr == "" { cfg.PageNumberAttr = fc.Classes.PageNumber }
    if cfg.TextLayerClass == "" { cfg.TextLayerClass = fc.Classes.TextLayer }
    if cfg.ChromePrefix == "" { cfg.ChromePrefix = fc.Classes.Chrome }
    if cfg.HighlightClass == "" { cfg.HighlightClass = fc.Classes.Highlight }

    if cfg.LogFile == "" && fc.Log.File != "" { cfg.LogFile = fc.Log.File }
    if cfg.LogMaxSizeMB == 0 && fc.Log.MaxSizeMB > 0 { cfg.LogMaxSizeMB = fc.Log.MaxSizeMB }
    if cfg.LogMaxBackups == 0 && fc.Log.MaxBackups > 0 { cfg.LogMaxBackups = fc.Log.MaxBackups }
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
    if strings.TrimSpace(cfg.DocPath) == "" {
        return errors.New("config: doc path is required")
    }
    if strings.TrimSpace(cfg.SelectionPath) == "" {
        return errors.New("config: selection path is required")
    }
    switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
    case "", "json", "yaml", "yml":
    default:
        return fmt.Errorf("config: unsupported format %q (want json or yaml)", cfg.Format)
    }
    if cfg.LogMaxSizeMB < 0 || cfg.LogMaxBackups < 0 {
        return errors.New("config: negative log limits are not allowed")
    }
    return nil
}
