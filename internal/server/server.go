package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/uitrail/uitrail/internal/logging"
	"github.com/uitrail/uitrail/internal/version"
)

// Config holds server configuration.
type Config struct {
	Transport string        // stdio or streamable-http
	Port      int           // MCP port when transport is streamable-http
	HTTPPort  int           // plain HTTP API port, 0 disables the API
	CacheTTL  time.Duration // snapshot cache lifetime, 0 keeps entries forever
	Separator string        // default segment separator for resolved paths
	Logger    *slog.Logger
}

// Server exposes the resolver over MCP, plus an optional plain HTTP API
// with Prometheus metrics.
type Server struct {
	cfg     Config
	cache   *snapshotCache
	metrics *metrics
	log     *slog.Logger
	mcp     *mcpserver.MCPServer
}

// New creates and configures a server with all uitrail tools registered.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		cache:   newSnapshotCache(cfg.CacheTTL),
		metrics: newMetrics(),
		log:     cfg.Logger,
	}

	s.mcp = mcpserver.NewMCPServer(
		"uitrail",
		version.Version,
	)

	s.registerTools()
	return s
}

// Serve starts the optional HTTP API, then blocks on the configured MCP
// transport.
func (s *Server) Serve() error {
	if s.cfg.HTTPPort > 0 {
		go func() {
			if err := s.serveHTTP(); err != nil {
				s.log.Error("http api stopped", "err", err)
			}
		}()
	}

	switch s.cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", s.cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

func (s *Server) registerTools() {
	// load_snapshot
	s.mcp.AddTool(
		mcp.NewTool("load_snapshot",
			mcp.WithDescription("Load a dialog snapshot from a file or inline JSON and cache it. Returns a ref the other tools accept in place of the full tree."),
			mcp.WithString("path", mcp.Description("Snapshot file to load (.json, .yaml)")),
			mcp.WithString("json", mcp.Description("Inline snapshot document")),
		),
		s.handleLoadSnapshot,
	)

	// resolve_path
	s.mcp.AddTool(
		mcp.NewTool("resolve_path",
			mcp.WithDescription("Resolve the breadcrumb path of an element inside a snapshot, e.g. 'Auto Import | Java | Insert imports on paste'"),
			mcp.WithString("ref", mcp.Description("Ref returned by load_snapshot")),
			mcp.WithString("path", mcp.Description("Snapshot file for a one-shot resolve")),
			mcp.WithString("json", mcp.Description("Inline snapshot document for a one-shot resolve")),
			mcp.WithNumber("target", mcp.Description("Target element ID")),
			mcp.WithString("text", mcp.Description("Find the target by text instead of ID (deepest match wins)")),
			mcp.WithBoolean("exact", mcp.Description("Require exact text match")),
			mcp.WithNumber("boundary", mcp.Description("Element ID capping the upward search")),
			mcp.WithString("base", mcp.Description("Leading path segment overriding title detection")),
			mcp.WithString("separator", mcp.Description("Segment separator (default ' | ')")),
		),
		s.handleResolvePath,
	)

	// list_elements
	s.mcp.AddTool(
		mcp.NewTool("list_elements",
			mcp.WithDescription("List snapshot elements flat, with IDs, kinds, cleaned text and absolute coordinates"),
			mcp.WithString("ref", mcp.Description("Ref returned by load_snapshot")),
			mcp.WithString("path", mcp.Description("Snapshot file")),
			mcp.WithString("json", mcp.Description("Inline snapshot document")),
			mcp.WithString("kind", mcp.Description("Filter by element kind (lbl, chk, radio, grp, tab, sep, border, styled)")),
			mcp.WithString("text", mcp.Description("Filter by text content")),
			mcp.WithBoolean("toggles", mcp.Description("Only checkboxes and radio buttons")),
			mcp.WithBoolean("visible-only", mcp.Description("Skip hidden elements")),
		),
		s.handleListElements,
	)
}
