package resolve

import (
	"strings"
	"testing"

	"github.com/uitrail/uitrail/pkg/model"
)

// el builds a leaf element with a standard 150x20 box at (x, y) in root
// coordinates.
func el(id int, kind model.Kind, text string, x, y int) model.Element {
	return model.Element{ID: id, Kind: kind, Text: text, Bounds: [4]int{x, y, 150, 20}}
}

// sel marks a toggle selected.
func sel(e model.Element) model.Element {
	e.Selected = true
	return e
}

// hide marks an element, and with it its whole subtree, invisible.
func hide(e model.Element) model.Element {
	v := false
	e.Visible = &v
	return e
}

// dialog indexes children under a standard root panel. The root takes wire
// ID 1; tests number their elements from 2.
func dialog(children ...model.Element) *model.Snapshot {
	root := model.Element{ID: 1, Kind: model.KindContainer, Bounds: [4]int{0, 0, 800, 600}, Children: children}
	return model.Index(&root)
}

// nodeByID resolves a wire ID to its arena index, failing the test when
// absent.
func nodeByID(t *testing.T, snap *model.Snapshot, wireID int) model.NodeID {
	t.Helper()
	id := snap.ByID(wireID)
	if id == model.InvalidNode {
		t.Fatalf("no element with id %d in snapshot", wireID)
	}
	return id
}

// newPass builds a resolution pass over the whole snapshot with default
// thresholds, for driving individual stages.
func newPass(snap *model.Snapshot) *pass {
	cfg := Config{}.withDefaults()
	return &pass{cfg: cfg, snap: snap, bound: snap.Root(), log: cfg.Logger}
}

// texts renders a toggle chain as a comparable string.
func texts(chain []toggleInfo) string {
	var out []string
	for _, c := range chain {
		out = append(out, c.text)
	}
	return strings.Join(out, ", ")
}
