package app

import (
    "os"
    "strconv"
    "strings"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
    if cfg == nil { return }

    setString := func(dst *string, envKey string) {
        if *dst == "" {
            *dst = strings.TrimSpace(os.Getenv(envKey))
        }
    }
    setString(&cfg.DocPath, "TEXTSELECT_DOC")
    setString(&cfg.SelectionPath, "TEXTSELECT_SELECTION")
    setString(&cfg.OutputPath, "TEXTSELECT_OUTPUT")
    setString(&cfg.LogFile, "TEXTSELECT_LOG_FILE")
    setString(&cfg.ChromePrefix, "TEXTSELECT_CHROME_PREFIX")
    setString(&cfg.HighlightClass, "TEXTSELECT_HIGHLIGHT_CLASS")

    if cfg.RootSelector == "" || cfg.RootSelector == rootSelectorDefault {
        if v := strings.TrimSpace(os.Getenv("TEXTSELECT_ROOT")); v != "" {
            cfg.RootSelector = v
        }
    }
    if cfg.Format == "" || cfg.Format == formatDefault {
        if v := strings.TrimSpace(os.Getenv("TEXTSELECT_FORMAT")); v != "" {
            cfg.Format = v
        }
    }

    if cfg.LogMaxSizeMB == 0 {
        if n, err := strconv.Atoi(strings.TrimSpace(os.Getenv("TEXTSELECT_LOG_MAX_SIZE_MB"))); err == nil && n > 0 {
            cfg.LogMaxSizeMB = n
        }
    }

    if !cfg.Verbose {
        switch strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))) {
        case "1", "true", "yes", "on":
            cfg.Verbose = true
        }
    }
}
