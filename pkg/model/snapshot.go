package model

// NodeID indexes a node within a Snapshot.
type NodeID int

// InvalidNode marks the absence of a node reference.
const InvalidNode NodeID = -1

// Node is one element in an indexed snapshot. Text fields are cleaned,
// visibility is effective (false when any ancestor is hidden), and tree
// links are arena indices rather than pointers.
type Node struct {
	ID               int // wire ID
	Kind             Kind
	Text             string
	Bounds           Rect
	Screen           *Point
	Visible          bool
	Selected         bool
	Emphasized       bool
	Fragments        []Fragment
	Tabs             []string
	SelectedTab      int // -1 when unset
	SelectedTabTitle string
	Parent           NodeID
	Children         []NodeID
}

// Snapshot is an immutable indexed view of an element tree, built once per
// resolution. Nodes are addressed by dense NodeIDs; nothing references the
// producer's live objects, so layout changes after capture cannot affect a
// resolution in progress.
type Snapshot struct {
	nodes []Node
	byID  map[int]NodeID
	root  NodeID
}

// Index builds a snapshot from a wire tree.
func Index(root *Element) *Snapshot {
	s := &Snapshot{byID: make(map[int]NodeID), root: InvalidNode}
	if root != nil {
		s.root = s.index(root, InvalidNode, true)
	}
	return s
}

func (s *Snapshot) index(el *Element, parent NodeID, parentVisible bool) NodeID {
	visible := parentVisible && (el.Visible == nil || *el.Visible)
	id := NodeID(len(s.nodes))

	n := Node{
		ID:               el.ID,
		Kind:             el.Kind,
		Text:             CleanText(el.Text),
		Bounds:           RectFromArray(el.Bounds),
		Visible:          visible,
		Selected:         el.Selected,
		Emphasized:       el.Emphasized,
		SelectedTab:      -1,
		SelectedTabTitle: CleanText(el.SelectedTabTitle),
		Parent:           parent,
	}
	if el.Screen != nil {
		p := *el.Screen
		n.Screen = &p
	}
	if el.SelectedTab != nil {
		n.SelectedTab = *el.SelectedTab
	}
	if len(el.Tabs) > 0 {
		n.Tabs = make([]string, len(el.Tabs))
		for i, t := range el.Tabs {
			n.Tabs[i] = CleanText(t)
		}
	}
	if len(el.Fragments) > 0 {
		n.Fragments = make([]Fragment, len(el.Fragments))
		for i, fr := range el.Fragments {
			n.Fragments[i] = Fragment{Text: CleanText(fr.Text), Emphasized: fr.Emphasized}
		}
	}
	if n.Text == "" && len(n.Fragments) > 0 {
		n.Text = JoinFragments(n.Fragments, false)
	}

	s.nodes = append(s.nodes, n)
	if el.ID != 0 {
		if _, dup := s.byID[el.ID]; !dup {
			s.byID[el.ID] = id
		}
	}
	for i := range el.Children {
		child := s.index(&el.Children[i], id, visible)
		s.nodes[id].Children = append(s.nodes[id].Children, child)
	}
	return id
}

// Root returns the root node, or InvalidNode for an empty snapshot.
func (s *Snapshot) Root() NodeID {
	return s.root
}

// Len returns the number of indexed nodes.
func (s *Snapshot) Len() int {
	return len(s.nodes)
}

// Node returns the node for id, or nil when id is out of range.
func (s *Snapshot) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil
	}
	return &s.nodes[id]
}

// ByID returns the node carrying the given wire ID, or InvalidNode.
func (s *Snapshot) ByID(wireID int) NodeID {
	if id, ok := s.byID[wireID]; ok {
		return id
	}
	return InvalidNode
}

// Contains reports whether container is id itself or one of its ancestors.
func (s *Snapshot) Contains(container, id NodeID) bool {
	if container == InvalidNode {
		return false
	}
	for cur := id; cur != InvalidNode; {
		if cur == container {
			return true
		}
		n := s.Node(cur)
		if n == nil {
			return false
		}
		cur = n.Parent
	}
	return false
}
