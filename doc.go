/*
Package uitrail infers human-readable breadcrumb paths for elements inside
captured UI component trees.

Given a snapshot of a dialog's element tree and one target element, the
resolver reconstructs the logical nesting a person would describe
("Section | Group | Sub-item"), even though the tree encodes it only
through 2-D position, indentation, and visual conventions such as bold
titles, trailing colons, separators, tab containers, and checkbox grids.
The inference is heuristic but deterministic: every tie-break is fixed, so
the same snapshot and target always produce the same path.

Snapshots are plain data ([github.com/uitrail/uitrail/pkg/model.Element])
decoded from JSON or YAML and indexed once per resolution into an
immutable arena ([github.com/uitrail/uitrail/pkg/model.Snapshot]).

# Usage

	doc, err := model.Load("settings.json")
	if err != nil {
		log.Fatal(err)
	}
	snap := model.Index(&doc.Root)

	r := uitrail.New(uitrail.WithSeparator(" | "))
	path, ok := r.Resolve(snap, uitrail.Request{
		Target:   snap.ByID(42),
		BasePath: "Editor | General | Auto Import",
	})
	if ok {
		fmt.Println(path)
	}

Resolution never fails: when geometry or context is missing the path comes
back shorter, and ok is false only when nothing could be said about the
target at all.

The geometric tolerances behind the heuristics (row tolerance, indentation
step, column gap) encode the visual-design assumptions of the captured
dialogs and can be tuned per resolver via options.
*/
package uitrail
