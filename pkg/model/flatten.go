package model

// FlatElement is an element row in a flattened listing, with derived
// screen coordinates and a kind path showing its location in the tree.
type FlatElement struct {
	ID       int    `yaml:"i"             json:"i"`
	Kind     Kind   `yaml:"k"             json:"k"`
	Text     string `yaml:"t,omitempty"   json:"t,omitempty"`
	Abs      Point  `yaml:"abs"           json:"abs"`
	Bounds   [4]int `yaml:"b"             json:"b"`
	Selected bool   `yaml:"s,omitempty"   json:"s,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Path     string `yaml:"p,omitempty"   json:"p,omitempty"`
}

// FlattenOptions filter a flat listing.
type FlattenOptions struct {
	VisibleOnly bool
	TogglesOnly bool
	Kinds       []Kind // empty = all kinds
	Text        string // case-insensitive substring on cleaned text
}

// Flatten converts a snapshot into a flat element list in document order.
// Each row carries a path of abbreviated kind codes joined with " > ".
func (s *Snapshot) Flatten(opts FlattenOptions) []FlatElement {
	var result []FlatElement
	if s.root != InvalidNode {
		s.flatten(s.root, "", opts, &result)
	}
	return result
}

func (s *Snapshot) flatten(id NodeID, parentPath string, opts FlattenOptions, result *[]FlatElement) {
	n := s.Node(id)
	if n == nil {
		return
	}
	currentPath := n.Kind.String()
	if parentPath != "" {
		currentPath = parentPath + " > " + n.Kind.String()
	}

	if s.flattenMatch(n, opts) {
		*result = append(*result, FlatElement{
			ID:       n.ID,
			Kind:     n.Kind,
			Text:     n.Text,
			Abs:      s.Absolute(id),
			Bounds:   n.Bounds.Array(),
			Selected: n.Selected,
			Hidden:   !n.Visible,
			Path:     currentPath,
		})
	}

	for _, c := range n.Children {
		s.flatten(c, currentPath, opts, result)
	}
}

func (s *Snapshot) flattenMatch(n *Node, opts FlattenOptions) bool {
	if opts.VisibleOnly && !n.Visible {
		return false
	}
	if opts.TogglesOnly && !n.Kind.IsToggle() {
		return false
	}
	if len(opts.Kinds) > 0 {
		ok := false
		for _, k := range opts.Kinds {
			if n.Kind == k {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if opts.Text != "" && !matchText(n.Text, opts.Text, false) {
		return false
	}
	return true
}
