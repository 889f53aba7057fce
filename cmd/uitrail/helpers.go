package main

import (
	"fmt"

	"github.com/uitrail/uitrail/pkg/model"
)

// openSnapshot loads and indexes the snapshot file named by a command's
// positional argument.
func openSnapshot(path string) (*model.Document, *model.Snapshot, error) {
	doc, err := model.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return doc, model.Index(&doc.Root), nil
}

// findTargetNode locates the element addressed by --id or --text. Text
// lookup returns the deepest match, first in document order when several
// elements tie.
func findTargetNode(snap *model.Snapshot, id int, text string, exact bool) (model.NodeID, error) {
	if id > 0 {
		n := snap.ByID(id)
		if n == model.InvalidNode {
			return model.InvalidNode, fmt.Errorf("element with id %d not found", id)
		}
		return n, nil
	}
	if text != "" {
		matches := snap.FindByText(text, exact)
		if len(matches) == 0 {
			return model.InvalidNode, fmt.Errorf("no element matching %q", text)
		}
		return matches[0], nil
	}
	return model.InvalidNode, fmt.Errorf("--id or --text is required")
}
