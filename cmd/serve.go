package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mj1618/taskbar-embed/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing taskbar tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the read-only
taskbar commands as tools: inspect, available_size, plan_layout.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  taskbar-embed serve
  taskbar-embed serve --transport streamable-http --port 8080
  taskbar-embed serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 5000, "Taskbar handle cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	shell, err := newShell()
	if err != nil {
		return err
	}
	return server.New(shell, &appConfig, cfg, logger).Serve(cfg)
}
