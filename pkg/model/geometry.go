package model

// Absolute returns the element's derived screen position, computed on
// demand and never cached. The reported on-screen location wins when
// present; otherwise parent-local offsets are summed upward, continuing
// from the first ancestor that reports one. This keeps elements inside
// not-yet-realized containers (inactive tabs) comparable. Elements with no
// geometry at all resolve to (0, 0).
func (s *Snapshot) Absolute(id NodeID) Point {
	var acc Point
	for cur := id; cur != InvalidNode; {
		n := s.Node(cur)
		if n == nil {
			break
		}
		if n.Screen != nil {
			return Point{X: n.Screen.X + acc.X, Y: n.Screen.Y + acc.Y}
		}
		acc.X += n.Bounds.X
		acc.Y += n.Bounds.Y
		cur = n.Parent
	}
	return acc
}
