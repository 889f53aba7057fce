package model

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk snapshot format: one captured tree plus the
// capture timestamp.
type Document struct {
	Root Element `yaml:"root" json:"root"`
	TS   int64   `yaml:"ts,omitempty" json:"ts,omitempty"`
}

// Load reads a snapshot document from disk. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON (which also accepts a bare
// element tree without the document wrapper). Missing element IDs are
// assigned depth-first.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal snapshot %s: %w", path, err)
		}
		AssignIDs(&doc.Root)
		return &doc, nil
	default:
		doc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("unmarshal snapshot %s: %w", path, err)
		}
		return doc, nil
	}
}

// Parse reads a snapshot document from a JSON payload. A bare element tree
// is accepted in place of the {root, ts} wrapper. Missing element IDs are
// assigned depth-first.
func Parse(data []byte) (*Document, error) {
	var probe struct {
		Root *Element `json:"root"`
		TS   int64    `json:"ts"`
	}
	if err := json.Unmarshal(data, &probe); err == nil && probe.Root != nil {
		doc := &Document{Root: *probe.Root, TS: probe.TS}
		AssignIDs(&doc.Root)
		return doc, nil
	}
	var root Element
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	doc := &Document{Root: root}
	AssignIDs(&doc.Root)
	return doc, nil
}

// Save writes the document as indented JSON.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// AssignIDs gives every element a stable positive ID, numbering unset IDs
// depth-first after the highest existing ID. Returns the element count.
func AssignIDs(root *Element) int {
	maxID := 0
	count := 0
	var scan func(el *Element)
	scan = func(el *Element) {
		count++
		if el.ID > maxID {
			maxID = el.ID
		}
		for i := range el.Children {
			scan(&el.Children[i])
		}
	}
	scan(root)

	next := maxID + 1
	var assign func(el *Element)
	assign = func(el *Element) {
		if el.ID == 0 {
			el.ID = next
			next++
		}
		for i := range el.Children {
			assign(&el.Children[i])
		}
	}
	assign(root)
	return count
}

// Hash computes a stable short identity hash for a tree from its canonical
// JSON encoding. Server caches use it as a snapshot reference.
func Hash(root *Element) string {
	data, _ := json.Marshal(root)
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h)[:16]
}
