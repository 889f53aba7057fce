package resolve

import (
	"strings"
	"unicode/utf8"

	"github.com/uitrail/uitrail/pkg/model"
)

// FindTitle returns a title for the subtree at root, trying three
// strategies in order: an emphasized label, the emphasized runs of a styled
// text element, then any title-shaped label. Returns "" when nothing within
// the depth budget qualifies.
func FindTitle(snap *model.Snapshot, root model.NodeID, maxDepth int) string {
	if t := findTitleBy(snap, root, maxDepth, emphasizedLabelTitle); t != "" {
		return t
	}
	if t := findTitleBy(snap, root, maxDepth, emphasizedFragmentTitle); t != "" {
		return t
	}
	return findTitleBy(snap, root, maxDepth, shapedTitle)
}

type titleFrame struct {
	id    model.NodeID
	depth int
}

// findTitleBy runs one strategy over a pre-order, depth-bounded traversal.
// The traversal uses an explicit stack; dialog trees can nest arbitrarily.
func findTitleBy(snap *model.Snapshot, root model.NodeID, maxDepth int, pick func(*model.Node) string) string {
	if snap.Node(root) == nil {
		return ""
	}
	stack := []titleFrame{{root, maxDepth}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := snap.Node(fr.id)
		if n == nil || !n.Visible {
			continue
		}
		if t := pick(n); t != "" {
			return t
		}
		if fr.depth <= 0 {
			continue
		}
		// Reverse push keeps pre-order: first child on top.
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, titleFrame{n.Children[i], fr.depth - 1})
		}
	}
	return ""
}

func emphasizedLabelTitle(n *model.Node) string {
	if n.Kind == model.KindLabel && n.Emphasized {
		return n.Text
	}
	return ""
}

func emphasizedFragmentTitle(n *model.Node) string {
	if n.Kind == model.KindStyled {
		return model.JoinFragments(n.Fragments, true)
	}
	return ""
}

func shapedTitle(n *model.Node) string {
	if n.Kind != model.KindLabel {
		return ""
	}
	t := n.Text
	if r := utf8.RuneCountInString(t); r < minTitleLen || r > maxTitleLen {
		return ""
	}
	if strings.HasSuffix(t, ":") {
		return ""
	}
	for _, hint := range shortcutHints {
		if strings.Contains(t, hint) {
			return ""
		}
	}
	return t
}
