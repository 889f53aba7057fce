package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/uitrail/uitrail/internal/output"
	"github.com/uitrail/uitrail/internal/resolve"
	"github.com/uitrail/uitrail/pkg/model"
)

// loadResult is the load_snapshot response body.
type loadResult struct {
	Ref      string `yaml:"ref" json:"ref"`
	Elements int    `yaml:"elements" json:"elements"`
	TS       int64  `yaml:"ts,omitempty" json:"ts,omitempty"`
}

// openSnapshot fetches the snapshot a tool call refers to: a cache ref, a
// file path, or an inline document. Path and inline loads are cached so
// the returned ref stays valid for follow-up calls.
func (s *Server) openSnapshot(ref, path, inline string) (*model.Document, *model.Snapshot, string, error) {
	switch {
	case ref != "":
		doc, snap := s.cache.get(ref)
		if snap == nil {
			return nil, nil, "", fmt.Errorf("unknown or expired ref %q, call load_snapshot first", ref)
		}
		return doc, snap, ref, nil
	case path != "":
		doc, err := model.Load(path)
		if err != nil {
			return nil, nil, "", err
		}
		ref, snap := s.cache.put(doc)
		return doc, snap, ref, nil
	case inline != "":
		doc, err := model.Parse([]byte(inline))
		if err != nil {
			return nil, nil, "", err
		}
		ref, snap := s.cache.put(doc)
		return doc, snap, ref, nil
	default:
		return nil, nil, "", fmt.Errorf("one of ref, path or json is required")
	}
}

// findTarget locates the target node by wire ID or text query.
func findTarget(snap *model.Snapshot, id int, text string, exact bool) (model.NodeID, error) {
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
	return model.InvalidNode, fmt.Errorf("target id or text is required")
}

// runResolve executes one resolve call, records its metric outcome, and
// assembles the result document.
func (s *Server) runResolve(snap *model.Snapshot, target model.NodeID, boundaryID int, base, sep string) output.ResolveResult {
	cfg := resolve.Config{Separator: s.cfg.Separator, Logger: s.log}
	if sep != "" {
		cfg.Separator = sep
	}

	boundary := model.InvalidNode
	if boundaryID > 0 {
		boundary = snap.ByID(boundaryID)
	}

	start := time.Now()
	path, ok := resolve.Run(cfg, snap, resolve.Request{
		Target:   target,
		Boundary: boundary,
		BasePath: base,
	})
	outcome := "miss"
	if ok {
		outcome = "ok"
	}
	s.metrics.observe(outcome, time.Since(start).Seconds())

	tn := snap.Node(target)
	return output.ResolveResult{
		Path:     path,
		OK:       ok,
		Target:   tn.ID,
		Text:     tn.Text,
		Boundary: boundaryID,
		Base:     base,
	}
}

func (s *Server) handleLoadSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Path string `mapstructure:"path"`
		JSON string `mapstructure:"json"`
	}
	if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if args.Path == "" && args.JSON == "" {
		return mcp.NewToolResultError("path or json is required"), nil
	}

	doc, snap, ref, err := s.openSnapshot("", args.Path, args.JSON)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.log.Debug("snapshot loaded", "ref", ref, "elements", snap.Len())

	b, _ := yaml.Marshal(loadResult{Ref: ref, Elements: snap.Len(), TS: doc.TS})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleResolvePath(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Ref       string `mapstructure:"ref"`
		Path      string `mapstructure:"path"`
		JSON      string `mapstructure:"json"`
		Target    int    `mapstructure:"target"`
		Text      string `mapstructure:"text"`
		Exact     bool   `mapstructure:"exact"`
		Boundary  int    `mapstructure:"boundary"`
		Base      string `mapstructure:"base"`
		Separator string `mapstructure:"separator"`
	}
	if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	_, snap, _, err := s.openSnapshot(args.Ref, args.Path, args.JSON)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	target, err := findTarget(snap, args.Target, args.Text, args.Exact)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := s.runResolve(snap, target, args.Boundary, args.Base, args.Separator)
	b, _ := yaml.Marshal(result)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *Server) handleListElements(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Ref         string `mapstructure:"ref"`
		Path        string `mapstructure:"path"`
		JSON        string `mapstructure:"json"`
		Kind        string `mapstructure:"kind"`
		Text        string `mapstructure:"text"`
		Toggles     bool   `mapstructure:"toggles"`
		VisibleOnly bool   `mapstructure:"visible-only"`
	}
	if err := mapstructure.Decode(request.GetArguments(), &args); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, snap, _, err := s.openSnapshot(args.Ref, args.Path, args.JSON)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := model.FlattenOptions{
		VisibleOnly: args.VisibleOnly,
		TogglesOnly: args.Toggles,
		Text:        args.Text,
	}
	if args.Kind != "" {
		opts.Kinds = []model.Kind{model.ParseKind(args.Kind)}
	}

	elements := snap.Flatten(opts)
	b, _ := yaml.Marshal(output.ListResult{TS: doc.TS, Count: len(elements), Elements: elements})
	return mcp.NewToolResultText(string(b)), nil
}
