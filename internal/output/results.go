package output

import "github.com/uitrail/uitrail/pkg/model"

// ResolveResult is the top-level output of the resolve command and the
// resolve API.
type ResolveResult struct {
	Path     string `yaml:"path,omitempty"     json:"path,omitempty"`
	OK       bool   `yaml:"ok"                 json:"ok"`
	Target   int    `yaml:"target"             json:"target"`
	Text     string `yaml:"text,omitempty"     json:"text,omitempty"`
	Boundary int    `yaml:"boundary,omitempty" json:"boundary,omitempty"`
	Base     string `yaml:"base,omitempty"     json:"base,omitempty"`
}

// ListResult is the top-level output of the inspect command and the
// element-listing API.
type ListResult struct {
	TS       int64               `yaml:"ts,omitempty" json:"ts,omitempty"`
	Count    int                 `yaml:"count"        json:"count"`
	Elements []model.FlatElement `yaml:"elements"     json:"elements"`
}
