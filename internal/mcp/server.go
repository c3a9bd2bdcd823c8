package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/ww2site/internal/catalog"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes page search tools.
type Server struct {
	catalog *catalog.Catalog
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over the given catalog.
func NewServer(cat *catalog.Catalog) *Server {
	s := &Server{catalog: cat}

	s.mcp = server.NewMCPServer(
		"ww2site",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchPagesTool, s.handleSearchPages)
	s.mcp.AddTool(listPagesTool, s.handleListPages)
	s.mcp.AddTool(yearPageTool, s.handleYearPage)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
