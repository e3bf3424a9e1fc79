// Package mcp exposes the bridge as MCP tools over stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/beacondev/echobridge/pkg/control"
	"github.com/beacondev/echobridge/pkg/schema"
)

// Server wraps the MCP server with the bridge's control surface
type Server struct {
	mcpServer  *server.MCPServer
	dispatcher *control.Dispatcher
	validator  *schema.Validator
}

// NewServer creates a new MCP server for smart-home control
func NewServer(dispatcher *control.Dispatcher, validator *schema.Validator) *Server {
	s := &Server{
		dispatcher: dispatcher,
		validator:  validator,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"echobridge",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
