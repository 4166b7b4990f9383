package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	trashion "github.com/totobolto-dev/trashion-api"
)

// Server exposes the inventory service as an MCP server, so agent tooling can
// query snapshots without going through the HTTP surface.
type Server struct {
	svc       *trashion.Service
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools.
func NewServer(svc *trashion.Service) *Server {
	s := &Server{
		svc:       svc,
		mcpServer: server.NewMCPServer("trashion-mcp", strings.TrimSpace(trashion.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: get_inventory
	s.mcpServer.AddTool(mcp.NewTool("get_inventory",
		mcp.WithDescription("Get the current inventory snapshot (cached when recent, fresh scrape otherwise)."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := s.svc.Inventory(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("inventory failed: %v", err)), nil
		}
		return jsonResult(snap)
	})

	// TOOL: get_status
	s.mcpServer.AddTool(mcp.NewTool("get_status",
		mcp.WithDescription("Get monitor status: business hours, last check, item count."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, err := s.svc.Status(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("status failed: %v", err)), nil
		}
		return jsonResult(st)
	})

	// TOOL: check_sold
	s.mcpServer.AddTool(mcp.NewTool("check_sold",
		mcp.WithDescription("Run an immediate check and report the item IDs sold since the last baseline."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, sold, err := s.svc.Refresh(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(map[string]any{
			"snapshot":   snap,
			"sold_items": sold,
		})
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
