package app

import (
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    yaml "gopkg.in/yaml.v3"

    "github.com/hyperifyio/textselect/internal/textrange"
)

// Request describes a recorded user selection to replay against a document.
// Range paths are relative to the document node ("/html[1]/body[1]/p[2]").
type Request struct {
    Ranges []textrange.Serialized `yaml:"ranges" json:"ranges"`
    // Button is the released mouse button; zero means primary.
    Button int `yaml:"button" json:"button"`
    // Target selects the element receiving the mouseup; defaults to the
    // element holding the first range's end.
    Target string `yaml:"target" json:"target"`
}

// LoadRequest reads a selection request from YAML or JSON.
func LoadRequest(path string) (Request, error) {
    var req Request
    b, err := os.ReadFile(path)
    if err != nil {
        return req, err
    }
    if filepath.Ext(path) == ".json" {
        if err := json.Unmarshal(b, &req); err != nil {
            return req, fmt.Errorf("parse selection json: %w", err)
        }
        return req, nil
    }
    // YAML is a superset of JSON for our purposes
    if err := yaml.Unmarshal(b, &req); err != nil {
        return req, fmt.Errorf("parse selection: %w", err)
    }
    return req, nil
}
