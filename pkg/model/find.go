package model

import "strings"

// FindByText returns visible elements whose cleaned text matches the query,
// preferring the deepest matches: when a match contains further matches in
// its subtree, only those descendants are returned. Matching is
// case-insensitive substring unless exact is set.
func (s *Snapshot) FindByText(query string, exact bool) []NodeID {
	if s.root == InvalidNode || query == "" {
		return nil
	}
	return s.findText(s.root, query, exact)
}

func (s *Snapshot) findText(id NodeID, query string, exact bool) []NodeID {
	n := s.Node(id)
	if n == nil {
		return nil
	}
	var deeper []NodeID
	for _, c := range n.Children {
		deeper = append(deeper, s.findText(c, query, exact)...)
	}
	if len(deeper) > 0 {
		return deeper
	}
	if n.Visible && matchText(n.Text, query, exact) {
		return []NodeID{id}
	}
	return nil
}

func matchText(text, query string, exact bool) bool {
	if text == "" {
		return false
	}
	if exact {
		return strings.EqualFold(text, query)
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
