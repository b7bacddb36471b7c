package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

// toText serializes a tool result to YAML for the MCP response.
func toText(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func (s *Server) regions() (*taskbar.Regions, error) {
	s.shellMu.Lock()
	defer s.shellMu.Unlock()
	return s.cache.Get(s.shell, s.conf.Profiles)
}

func (s *Server) handleInspect(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	r, err := s.regions()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(r)), nil
}

func (s *Server) handleAvailableSize(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	req := model.Size{
		Width:  int32(IntParam(params, "width", 0)),
		Height: int32(IntParam(params, "height", 0)),
	}
	mode, err := taskbar.ParseSizing(StringParam(params, "sizing", s.conf.Sizing))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	r, err := s.regions()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	avail, err := taskbar.ComputeAvailableSize(r, req, mode)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(output.SizeResult{
		Request:   req,
		Sizing:    mode.String(),
		Thickness: r.Thickness(),
		Gap:       r.Gap(),
		Available: avail,
	})), nil
}

func (s *Server) handlePlanLayout(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	size := model.Size{
		Width:  int32(IntParam(params, "width", 0)),
		Height: int32(IntParam(params, "height", 0)),
	}
	if size.Width < 0 || size.Height < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("%v: negative size %v", taskbar.ErrInvalidGeometryRequest, size)), nil
	}

	r, err := s.regions()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(output.PlanResult{
		Size:   size,
		Layout: taskbar.PlanLayout(r, size),
	})), nil
}
