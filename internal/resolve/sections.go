package resolve

import "github.com/uitrail/uitrail/pkg/model"

// sepInfo captures one visible separator's geometry.
type sepInfo struct {
	id   model.NodeID
	pos  model.Point
	text string
}

// collectSeparators gathers the visible separators inside the boundary,
// excluding the target itself. Untitled separators still participate: they
// fence sections even when they contribute no segment.
func (p *pass) collectSeparators(target model.NodeID) []sepInfo {
	var seps []sepInfo
	p.walk(p.bound, func(id model.NodeID, n *model.Node) {
		if id == target || n.Kind != model.KindSeparator {
			return
		}
		seps = append(seps, sepInfo{id: id, pos: p.snap.Absolute(id), text: n.Text})
	})
	return seps
}

// multiColumnSeps reports a multi-column layout: two separators sharing a
// row but sitting in different columns.
func (p *pass) multiColumnSeps(seps []sepInfo) bool {
	for i := range seps {
		for j := i + 1; j < len(seps); j++ {
			dy := abs(seps[i].pos.Y - seps[j].pos.Y)
			dx := abs(seps[i].pos.X - seps[j].pos.X)
			if dy <= p.cfg.RowTolerance && dx > p.cfg.ColumnGap {
				return true
			}
		}
	}
	return false
}

// nearestSeparatorAbove picks the separator closest above the target. In
// multi-column layouts, separators from other columns are rejected: ones
// the target sits left of by more than the indent step, and ones shadowed
// by a horizontally closer separator within the column gap.
func (p *pass) nearestSeparatorAbove(seps []sepInfo, tPos model.Point, multi bool) (sepInfo, bool) {
	var best sepInfo
	found := false
	for _, s := range seps {
		if s.pos.Y > tPos.Y {
			continue
		}
		if multi && p.crossColumn(seps, s, tPos) {
			continue
		}
		if !found || p.betterSep(s, best, tPos) {
			best = s
			found = true
		}
	}
	return best, found
}

func (p *pass) crossColumn(seps []sepInfo, cand sepInfo, tPos model.Point) bool {
	if tPos.X < cand.pos.X-p.cfg.IndentStep {
		return true
	}
	dc := abs(cand.pos.X - tPos.X)
	for _, o := range seps {
		if o.id == cand.id || o.pos.Y > tPos.Y {
			continue
		}
		do := abs(o.pos.X - tPos.X)
		if do < dc && do <= p.cfg.ColumnGap {
			return true
		}
	}
	return false
}

// betterSep orders separator candidates: closest above wins, then the
// horizontally nearest, then the leftmost.
func (p *pass) betterSep(a, b sepInfo, tPos model.Point) bool {
	if a.pos.Y != b.pos.Y {
		return a.pos.Y > b.pos.Y
	}
	da, db := abs(a.pos.X-tPos.X), abs(b.pos.X-tPos.X)
	if da != db {
		return da < db
	}
	return a.pos.X < b.pos.X
}
