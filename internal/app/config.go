package app

// Config holds runtime configuration for the application.
type Config struct {
    // Inputs
    DocPath       string
    SelectionPath string
    RootSelector  string

    // Output
    OutputPath string
    Format     string

    // Document classification; empty values fall back to dom.DefaultOptions.
    ViewerClass    string
    PageClass      string
    PageNumberAttr string
    TextLayerClass string
    ChromePrefix   string
    HighlightClass string

    // Logging
    Verbose       bool
    LogFile       string
    LogMaxSizeMB  int
    LogMaxBackups int
}
