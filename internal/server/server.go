// Package server exposes the read-only taskbar operations as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/platform"
	"github.com/mj1618/taskbar-embed/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the shell and a region cache.
type Server struct {
	shell   platform.Shell
	conf    *config.Config
	cache   *RegionCache
	shellMu sync.Mutex
	logger  *slog.Logger
	mcp     *mcpserver.MCPServer
}

// New creates an MCP server with the taskbar tools registered.
func New(shell platform.Shell, conf *config.Config, cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		shell:  shell,
		conf:   conf,
		cache:  NewRegionCache(cfg.CacheTTL),
		logger: logger,
	}
	s.mcp = mcpserver.NewMCPServer(
		"taskbar-embed",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s
}

// Serve starts the server with the configured transport and blocks.
func (s *Server) Serve(cfg Config) error {
	s.logger.Info("mcp server starting", "transport", cfg.Transport, "port", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("inspect",
			mcp.WithDescription("Locate the taskbar regions (icon area, toolbar, notification area) and return their handles, thread/process ids and rects"),
		),
		s.handleInspect,
	)

	s.mcp.AddTool(
		mcp.NewTool("available_size",
			mcp.WithDescription("Compute the size an embedded control may occupy for a requested size"),
			mcp.WithNumber("width", mcp.Description("Requested width in pixels")),
			mcp.WithNumber("height", mcp.Description("Requested height in pixels")),
			mcp.WithString("sizing", mcp.Description("Sizing mode: fill-gap or aspect (default from config)")),
		),
		s.handleAvailableSize,
	)

	s.mcp.AddTool(
		mcp.NewTool("plan_layout",
			mcp.WithDescription("Compute control and toolbar placements for a control of the given size without moving anything"),
			mcp.WithNumber("width", mcp.Required(), mcp.Description("Control width in pixels")),
			mcp.WithNumber("height", mcp.Required(), mcp.Description("Control height in pixels")),
		),
		s.handlePlanLayout,
	)
}
