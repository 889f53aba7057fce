package resolve

import "github.com/uitrail/uitrail/pkg/model"

// containerTrail walks from the target up to the boundary (exclusive),
// collecting the selected tab title of every tab container and the title of
// every titled border panel. Each title is inserted at the front as it is
// found: closer containers are met first, so the outermost ends up leading
// and tab/border interleaving matches the visual nesting. Ancestors are not
// visibility-filtered; a target inside an inactive tab still owes its trail
// to the containers above it. A boundary at the target itself leaves
// nothing between them, so the trail is empty.
func (p *pass) containerTrail(target model.NodeID) []string {
	n := p.snap.Node(target)
	if n == nil || target == p.bound {
		return nil
	}
	var trail []string
	for cur := n.Parent; cur != model.InvalidNode && cur != p.bound; {
		a := p.snap.Node(cur)
		if a == nil {
			break
		}
		switch a.Kind {
		case model.KindTabs:
			if t := selectedTabTitle(a); t != "" {
				trail = append([]string{t}, trail...)
			}
		case model.KindBorder:
			if a.Text != "" {
				trail = append([]string{a.Text}, trail...)
			}
		}
		cur = a.Parent
	}
	return trail
}

// selectedTabTitle returns the title of a tab container's selected tab: the
// directly reported title when present, else the title at the selected
// index. Invalid indices are skipped rather than erroring.
func selectedTabTitle(n *model.Node) string {
	if n.SelectedTabTitle != "" {
		return n.SelectedTabTitle
	}
	if n.SelectedTab >= 0 && n.SelectedTab < len(n.Tabs) {
		return n.Tabs[n.SelectedTab]
	}
	return ""
}
