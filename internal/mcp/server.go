package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/i18n"
	"github.com/ziadkadry99/abx-navigator/internal/navigator"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the guide's parts and documents.
type Server struct {
	loader       *content.Loader
	msgs         *i18n.Messages
	manifestPath string
	mcp          *server.MCPServer
}

// NewServer creates a new MCP server reading the guide through loader.
func NewServer(loader *content.Loader, msgs *i18n.Messages, manifestPath string) *Server {
	if manifestPath == "" {
		manifestPath = navigator.DefaultManifestPath
	}
	s := &Server{
		loader:       loader,
		msgs:         msgs,
		manifestPath: manifestPath,
	}

	s.mcp = server.NewMCPServer(
		"abxnav",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPartsTool, s.handleListParts)
	s.mcp.AddTool(getPartTool, s.handleGetPart)
	s.mcp.AddTool(getDocumentTool, s.handleGetDocument)
	s.mcp.AddTool(getItemTool, s.handleGetItem)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
