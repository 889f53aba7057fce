package resolve

import (
	"log/slog"
	"strings"

	"github.com/uitrail/uitrail/pkg/model"
)

// Request identifies what to resolve within a snapshot.
type Request struct {
	Target   model.NodeID
	Boundary model.NodeID // optional; the target's root when unset or not an ancestor
	BasePath string       // optional leading segment, e.g. the host dialog's own trail
}

// pass bundles the shared state of one resolution.
type pass struct {
	cfg   Config
	snap  *model.Snapshot
	bound model.NodeID
	log   *slog.Logger
}

// Run resolves the breadcrumb path for req. It never fails: missing context
// degrades to a shorter path, and ok is false only when nothing at all
// could be said about the target.
func Run(cfg Config, snap *model.Snapshot, req Request) (string, bool) {
	cfg = cfg.withDefaults()
	if snap == nil {
		return "", false
	}
	tn := snap.Node(req.Target)
	if tn == nil {
		return "", false
	}

	bound := req.Boundary
	if bound == model.InvalidNode || !snap.Contains(bound, req.Target) {
		bound = snap.Root()
	}

	p := &pass{cfg: cfg, snap: snap, bound: bound, log: cfg.Logger}
	tPos := snap.Absolute(req.Target)

	base := strings.TrimSpace(req.BasePath)
	if base == "" {
		base = FindTitle(snap, bound, cfg.TitleDepth)
	}

	segs := []string{base}
	segs = append(segs, p.containerTrail(req.Target)...)

	seps := p.collectSeparators(req.Target)
	multi := p.multiColumnSeps(seps)
	sep, haveSep := p.nearestSeparatorAbove(seps, tPos, multi)
	if haveSep {
		segs = append(segs, sep.text)
	}

	if tn.Kind.IsToggle() {
		segs = append(segs, p.toggleSegments(req.Target, tPos, seps, multi, sep, haveSep)...)
	}

	segs = append(segs, tn.Text)

	path, ok := joinSegments(segs, cfg.Separator)
	p.log.Debug("path assembled", "target", tn.ID, "segments", len(segs), "ok", ok)
	return path, ok
}

// walk visits the visible subtree under id in document order. A hidden
// node prunes its whole subtree; effective visibility already folds the
// ancestors in.
func (p *pass) walk(id model.NodeID, fn func(model.NodeID, *model.Node)) {
	n := p.snap.Node(id)
	if n == nil || !n.Visible {
		return
	}
	fn(id, n)
	for _, c := range n.Children {
		p.walk(c, fn)
	}
}

// joinSegments trims and joins segments, suppressing empties and adjacent
// duplicates and trimming trailing separators. ok is false for an empty
// result.
func joinSegments(segs []string, sep string) (string, bool) {
	var out []string
	for _, s := range segs {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == s {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return "", false
	}

	joined := strings.Join(out, sep)
	trimmedSep := strings.TrimSpace(sep)
	for {
		j := strings.TrimSpace(joined)
		switch {
		case sep != "" && strings.HasSuffix(j, sep):
			joined = strings.TrimSuffix(j, sep)
		case trimmedSep != "" && strings.HasSuffix(j, trimmedSep):
			joined = strings.TrimSuffix(j, trimmedSep)
		default:
			return j, j != ""
		}
	}
}
