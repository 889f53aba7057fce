package resolve

import (
	"math"
	"sort"

	"github.com/uitrail/uitrail/pkg/model"
)

// toggleInfo captures one visible toggle's geometry for hierarchy analysis.
type toggleInfo struct {
	id       model.NodeID
	kind     model.Kind
	pos      model.Point
	selected bool
	text     string
}

// labelInfo captures one visible group label (text ending in ':').
type labelInfo struct {
	id   model.NodeID
	pos  model.Point
	text string
}

// toggleSegments resolves the logical containment of a checkbox or radio
// button: its group label and its chain of parent toggles, ordered
// outermost first. Ambiguity degrades to a shorter or empty list, never an
// error. seps, multi, and the preceding separator are shared with the
// assembler so the scan happens once.
func (p *pass) toggleSegments(target model.NodeID, tPos model.Point, seps []sepInfo, multi bool, sep sepInfo, haveSep bool) []string {
	toggles := p.collectToggles()
	labels := p.collectLabels()

	grid := p.gridSiblings(toggles, target, tPos)
	master, haveMaster := p.masterCheckbox(toggles, target, grid, seps)

	cands := p.parentCandidates(toggles, target, tPos, grid, sep, haveSep, multi, master, haveMaster)
	cands = p.pruneRadioPeers(cands)
	cands = p.blockByLabels(cands, labels, tPos, master, haveMaster)

	chain := p.assembleChain(cands, tPos, master, haveMaster)
	label, haveLabel := p.selectGroupLabel(labels, toggles, tPos, chain, seps, multi, master, haveMaster)

	p.log.Debug("toggle hierarchy",
		"toggles", len(toggles),
		"gridSiblings", len(grid),
		"master", haveMaster,
		"chain", len(chain),
		"label", haveLabel)

	return orderToggleSegments(chain, label, haveLabel)
}

func (p *pass) collectToggles() []toggleInfo {
	var out []toggleInfo
	p.walk(p.bound, func(id model.NodeID, n *model.Node) {
		if !n.Kind.IsToggle() {
			return
		}
		out = append(out, toggleInfo{
			id:       id,
			kind:     n.Kind,
			pos:      p.snap.Absolute(id),
			selected: n.Selected,
			text:     n.Text,
		})
	})
	return out
}

func (p *pass) collectLabels() []labelInfo {
	var out []labelInfo
	p.walk(p.bound, func(id model.NodeID, n *model.Node) {
		if n.Kind != model.KindLabel || n.Text == "" {
			return
		}
		if n.Text[len(n.Text)-1] != ':' {
			return
		}
		out = append(out, labelInfo{id: id, pos: p.snap.Absolute(id), text: n.Text})
	})
	return out
}

// gridSiblings detects a row/column matrix around the target. Row mates at
// materially different X define the grid's columns; every row where at
// least two toggles align to those columns joins the grid. Grid members are
// peers of the target, never ancestors.
func (p *pass) gridSiblings(toggles []toggleInfo, target model.NodeID, tPos model.Point) map[model.NodeID]bool {
	cols := []int{tPos.X}
	for _, t := range toggles {
		if t.id == target {
			continue
		}
		if abs(t.pos.Y-tPos.Y) <= p.cfg.RowTolerance && abs(t.pos.X-tPos.X) > p.cfg.IndentStep {
			cols = append(cols, t.pos.X)
		}
	}
	if len(cols) < 2 {
		return nil
	}

	siblings := make(map[model.NodeID]bool)
	for _, row := range groupRows(toggles, p.cfg.RowTolerance) {
		aligned := 0
		for _, t := range row {
			if nearAnyColumn(t.pos.X, cols, p.cfg.IndentStep) {
				aligned++
			}
		}
		if aligned < 2 {
			continue
		}
		for _, t := range row {
			if t.id != target {
				siblings[t.id] = true
			}
		}
	}
	return siblings
}

// groupRows clusters toggles into visual rows by Y, nearest first.
func groupRows(toggles []toggleInfo, tol int) [][]toggleInfo {
	sorted := append([]toggleInfo(nil), toggles...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].pos.Y < sorted[j].pos.Y })
	var rows [][]toggleInfo
	for _, t := range sorted {
		if len(rows) > 0 {
			row := rows[len(rows)-1]
			if abs(t.pos.Y-row[0].pos.Y) <= tol {
				rows[len(rows)-1] = append(row, t)
				continue
			}
		}
		rows = append(rows, []toggleInfo{t})
	}
	return rows
}

func nearAnyColumn(x int, cols []int, tol int) bool {
	for _, c := range cols {
		if abs(x-c) <= tol {
			return true
		}
	}
	return false
}

// masterCheckbox finds the topmost visible checkbox (excluding the target
// and grid members) and checks whether it governs the panel: some toggle
// must be indented under it before the first separator that follows it.
// This separates a genuine parent checkbox from an unrelated first item.
func (p *pass) masterCheckbox(toggles []toggleInfo, target model.NodeID, grid map[model.NodeID]bool, seps []sepInfo) (toggleInfo, bool) {
	var master toggleInfo
	found := false
	for _, t := range toggles {
		if t.id == target || t.kind != model.KindCheckbox || grid[t.id] {
			continue
		}
		if !found || t.pos.Y < master.pos.Y || (t.pos.Y == master.pos.Y && t.pos.X < master.pos.X) {
			master = t
			found = true
		}
	}
	if !found {
		return toggleInfo{}, false
	}

	sectionEnd := math.MaxInt
	for _, s := range seps {
		if s.pos.Y > master.pos.Y && s.pos.Y < sectionEnd {
			sectionEnd = s.pos.Y
		}
	}
	for _, t := range toggles {
		if t.id == master.id {
			continue
		}
		if t.pos.X > master.pos.X+p.cfg.IndentStep && t.pos.Y > master.pos.Y && t.pos.Y < sectionEnd {
			return master, true
		}
	}
	return toggleInfo{}, false
}

// parentCandidates collects toggles that could sit on the target's
// containment chain: above the target, inside the current section, not
// grid members, horizontally near in multi-column layouts, and either
// outdented past the target or the qualifying master at the target's own
// indentation.
func (p *pass) parentCandidates(toggles []toggleInfo, target model.NodeID, tPos model.Point, grid map[model.NodeID]bool, sep sepInfo, haveSep bool, multi bool, master toggleInfo, haveMaster bool) []toggleInfo {
	var out []toggleInfo
	for _, t := range toggles {
		if t.id == target || grid[t.id] {
			continue
		}
		if t.pos.Y >= tPos.Y {
			continue
		}
		if haveSep && t.pos.Y < sep.pos.Y {
			continue
		}
		if multi && abs(t.pos.X-tPos.X) > p.cfg.ColumnGap {
			continue
		}
		outdented := t.pos.X < tPos.X-p.cfg.IndentStep
		masterHere := haveMaster && t.id == master.id && abs(t.pos.X-tPos.X) <= p.cfg.IndentStep
		if outdented || masterHere {
			out = append(out, t)
		}
	}
	return out
}

// pruneRadioPeers drops unselected radios that share an indentation level
// with other radio candidates. A level is mutually exclusive; only the
// active path stays open. A radio alone at its level survives as-is.
func (p *pass) pruneRadioPeers(cands []toggleInfo) []toggleInfo {
	var radios []toggleInfo
	for _, c := range cands {
		if c.kind == model.KindRadio {
			radios = append(radios, c)
		}
	}
	if len(radios) < 2 {
		return cands
	}

	sort.Slice(radios, func(i, j int) bool { return radios[i].pos.X < radios[j].pos.X })
	drop := make(map[model.NodeID]bool)
	for i := 0; i < len(radios); {
		j := i + 1
		for j < len(radios) && radios[j].pos.X-radios[i].pos.X <= p.cfg.IndentStep {
			j++
		}
		if j-i >= 2 {
			for k := i; k < j; k++ {
				if !radios[k].selected {
					drop[radios[k].id] = true
				}
			}
		}
		i = j
	}
	if len(drop) == 0 {
		return cands
	}

	out := cands[:0]
	for _, c := range cands {
		if !drop[c.id] {
			out = append(out, c)
		}
	}
	return out
}

// blockByLabels discards candidates cut off from the target by a group
// label, unless another candidate between the label and the target at the
// label's indentation claims that label for itself. The master checkbox is
// exempt.
func (p *pass) blockByLabels(cands []toggleInfo, labels []labelInfo, tPos model.Point, master toggleInfo, haveMaster bool) []toggleInfo {
	if len(cands) == 0 || len(labels) == 0 {
		return cands
	}
	var out []toggleInfo
	for _, c := range cands {
		if haveMaster && c.id == master.id {
			out = append(out, c)
			continue
		}
		if !p.labelBlocks(c, cands, labels, tPos) {
			out = append(out, c)
		}
	}
	return out
}

func (p *pass) labelBlocks(c toggleInfo, cands []toggleInfo, labels []labelInfo, tPos model.Point) bool {
	for _, l := range labels {
		if l.pos.Y <= c.pos.Y || l.pos.Y >= tPos.Y {
			continue
		}
		if tPos.X-l.pos.X <= p.cfg.IndentStep {
			continue
		}
		claimed := false
		for _, o := range cands {
			if o.id == c.id {
				continue
			}
			if o.pos.Y > l.pos.Y && o.pos.Y < tPos.Y && abs(o.pos.X-l.pos.X) <= p.cfg.IndentStep {
				claimed = true
				break
			}
		}
		if !claimed {
			return true
		}
	}
	return false
}

// assembleChain keeps a strictly-outdenting chain walking upward from the
// target. The master checkbox joins regardless of indentation, clamping
// the current level. Result is ordered farthest (topmost) first.
func (p *pass) assembleChain(cands []toggleInfo, tPos model.Point, master toggleInfo, haveMaster bool) []toggleInfo {
	sorted := append([]toggleInfo(nil), cands...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].pos.Y != sorted[j].pos.Y {
			return sorted[i].pos.Y < sorted[j].pos.Y
		}
		return sorted[i].pos.X < sorted[j].pos.X
	})

	currentX := tPos.X
	var chain []toggleInfo
	for i := len(sorted) - 1; i >= 0; i-- {
		c := sorted[i]
		switch {
		case haveMaster && c.id == master.id:
			chain = append(chain, c)
			if c.pos.X < currentX {
				currentX = c.pos.X
			}
		case c.pos.X < currentX-p.cfg.IndentStep:
			chain = append(chain, c)
			currentX = c.pos.X
		}
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// selectGroupLabel picks the one label naming the target's cluster. A
// same-row label to the left wins outright (horizontal layouts). Otherwise
// the nearest label above qualifies when the target is indented past it,
// it lines up with the chain's outermost parent, and nothing cuts it off:
// no separator, no other label, and no non-master outdented checkbox
// between it and the target.
func (p *pass) selectGroupLabel(labels []labelInfo, toggles []toggleInfo, tPos model.Point, chain []toggleInfo, seps []sepInfo, multi bool, master toggleInfo, haveMaster bool) (labelInfo, bool) {
	var best labelInfo
	found := false
	for _, l := range labels {
		if abs(l.pos.Y-tPos.Y) > p.cfg.RowTolerance || l.pos.X >= tPos.X {
			continue
		}
		if !found || l.pos.X > best.pos.X {
			best = l
			found = true
		}
	}
	if found {
		return best, true
	}

	anchorX := tPos.X
	anchored := false
	if len(chain) > 0 {
		anchorX = chain[0].pos.X
		anchored = true
	}
	for _, l := range labels {
		if l.pos.Y >= tPos.Y {
			continue
		}
		if tPos.X <= l.pos.X {
			continue
		}
		if anchored && abs(l.pos.X-anchorX) > p.cfg.IndentStep {
			continue
		}
		if multi && abs(l.pos.X-tPos.X) > p.cfg.ColumnGap {
			continue
		}
		if p.labelCutOff(l, labels, toggles, tPos, seps, master, haveMaster) {
			continue
		}
		if !found || p.betterLabel(l, best, tPos) {
			best = l
			found = true
		}
	}
	return best, found
}

func (p *pass) labelCutOff(l labelInfo, labels []labelInfo, toggles []toggleInfo, tPos model.Point, seps []sepInfo, master toggleInfo, haveMaster bool) bool {
	for _, s := range seps {
		if s.pos.Y > l.pos.Y && s.pos.Y < tPos.Y {
			return true
		}
	}
	for _, o := range labels {
		if o.id == l.id {
			continue
		}
		if o.pos.Y > l.pos.Y && o.pos.Y < tPos.Y {
			return true
		}
	}
	for _, t := range toggles {
		if t.kind != model.KindCheckbox {
			continue
		}
		if haveMaster && t.id == master.id {
			continue
		}
		if t.pos.Y > l.pos.Y && t.pos.Y < tPos.Y && t.pos.X < tPos.X-p.cfg.IndentStep {
			return true
		}
	}
	return false
}

// betterLabel orders label candidates: nearest above wins, then the
// horizontally closest, then the leftmost.
func (p *pass) betterLabel(a, b labelInfo, tPos model.Point) bool {
	if a.pos.Y != b.pos.Y {
		return a.pos.Y > b.pos.Y
	}
	da, db := abs(a.pos.X-tPos.X), abs(b.pos.X-tPos.X)
	if da != db {
		return da < db
	}
	return a.pos.X < b.pos.X
}

// orderToggleSegments interleaves the chain with the group label: parents
// above the label lead, the label follows, parents at or below it close.
func orderToggleSegments(chain []toggleInfo, label labelInfo, haveLabel bool) []string {
	var segs []string
	if !haveLabel {
		for _, c := range chain {
			segs = append(segs, c.text)
		}
		return segs
	}
	for _, c := range chain {
		if c.pos.Y < label.pos.Y {
			segs = append(segs, c.text)
		}
	}
	segs = append(segs, label.text)
	for _, c := range chain {
		if c.pos.Y >= label.pos.Y {
			segs = append(segs, c.text)
		}
	}
	return segs
}
