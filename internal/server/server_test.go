package server

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/output"
	"github.com/mj1618/taskbar-embed/internal/platform/simulated"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

func newTestServer(t *testing.T, ttl time.Duration) (*Server, *simulated.Shell) {
	t.Helper()
	sh := simulated.New(simulated.DefaultConfig())
	conf := config.Default()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(sh, &conf, Config{Transport: "stdio", CacheTTL: ttl}, logger), sh
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	default:
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return ""
}

func TestHandleInspect(t *testing.T) {
	s, _ := newTestServer(t, 0)
	res, err := s.handleInspect(context.Background(), callRequest("inspect", nil))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var r taskbar.Regions
	if err := yaml.Unmarshal([]byte(resultText(t, res)), &r); err != nil {
		t.Fatal(err)
	}
	if r.Profile != "classic" {
		t.Errorf("profile: got %q, want classic", r.Profile)
	}
	if r.Notify.Desktop.Left != 1800 {
		t.Errorf("notify left: got %d, want 1800", r.Notify.Desktop.Left)
	}
}

func TestHandleAvailableSize_FillGap(t *testing.T) {
	s, _ := newTestServer(t, 0)
	res, err := s.handleAvailableSize(context.Background(), callRequest("available_size", map[string]any{
		"width":  float64(200),
		"height": float64(50),
	}))
	if err != nil {
		t.Fatal(err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var got output.SizeResult
	if err := yaml.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if got.Available.Width != 40 || got.Available.Height != 120 {
		t.Errorf("available: got %v, want 40x120", got.Available)
	}
}

func TestHandleAvailableSize_Aspect(t *testing.T) {
	s, _ := newTestServer(t, 0)
	res, _ := s.handleAvailableSize(context.Background(), callRequest("available_size", map[string]any{
		"width":  float64(200),
		"height": float64(50),
		"sizing": "aspect",
	}))
	var got output.SizeResult
	if err := yaml.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if got.Available.Width != 160 || got.Available.Height != 40 {
		t.Errorf("available: got %v, want 160x40", got.Available)
	}
}

func TestHandleAvailableSize_Errors(t *testing.T) {
	s, _ := newTestServer(t, 0)
	tests := []struct {
		name string
		args map[string]any
	}{
		{"zero height aspect", map[string]any{"width": float64(100), "sizing": "aspect"}},
		{"negative", map[string]any{"width": float64(-1), "height": float64(10)}},
		{"bad sizing", map[string]any{"width": float64(1), "height": float64(1), "sizing": "stretch"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.handleAvailableSize(context.Background(), callRequest("available_size", tt.args))
			if err != nil {
				t.Fatal(err)
			}
			if !res.IsError {
				t.Errorf("expected tool error, got %s", resultText(t, res))
			}
		})
	}
}

func TestHandlePlanLayout(t *testing.T) {
	s, _ := newTestServer(t, 0)
	res, err := s.handlePlanLayout(context.Background(), callRequest("plan_layout", map[string]any{
		"width":  float64(120),
		"height": float64(40),
	}))
	if err != nil {
		t.Fatal(err)
	}
	var got output.PlanResult
	if err := yaml.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatal(err)
	}
	if got.Layout.Control.X != 1680 || got.Layout.Toolbar.Width != 1632 {
		t.Errorf("layout: got %+v", got.Layout)
	}
}

func TestHandlePlanLayout_Negative(t *testing.T) {
	s, _ := newTestServer(t, 0)
	res, _ := s.handlePlanLayout(context.Background(), callRequest("plan_layout", map[string]any{
		"width":  float64(-5),
		"height": float64(40),
	}))
	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if !strings.Contains(resultText(t, res), "negative") {
		t.Errorf("error text: %q", resultText(t, res))
	}
}

func TestRegionCache_RefreshesRects(t *testing.T) {
	s, sh := newTestServer(t, time.Minute)
	first, err := s.regions()
	if err != nil {
		t.Fatal(err)
	}
	sh.Resize(48, 200)
	second, err := s.regions()
	if err != nil {
		t.Fatal(err)
	}
	if first.AppIcon.Handle != second.AppIcon.Handle {
		t.Errorf("cached handle changed: %v -> %v", first.AppIcon.Handle, second.AppIcon.Handle)
	}
	if second.Thickness() != 48 {
		t.Errorf("thickness after resize: got %d, want 48", second.Thickness())
	}
	if first.Thickness() != 40 {
		t.Errorf("earlier result mutated: thickness %d", first.Thickness())
	}
}

func TestParams(t *testing.T) {
	params := map[string]any{"n": float64(7), "s": " x ", "str": "12", "empty": ""}
	if got := IntParam(params, "n", 0); got != 7 {
		t.Errorf("IntParam float: %d", got)
	}
	if got := IntParam(params, "str", 0); got != 12 {
		t.Errorf("IntParam string: %d", got)
	}
	if got := IntParam(params, "missing", 3); got != 3 {
		t.Errorf("IntParam default: %d", got)
	}
	if got := StringParam(params, "s", ""); got != "x" {
		t.Errorf("StringParam: %q", got)
	}
	if got := StringParam(params, "empty", "d"); got != "d" {
		t.Errorf("StringParam default: %q", got)
	}
}

func TestServe_UnknownTransport(t *testing.T) {
	s, _ := newTestServer(t, 0)
	if err := s.Serve(Config{Transport: "carrier-pigeon"}); err == nil {
		t.Error("expected error")
	}
}
