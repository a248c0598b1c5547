// Package server exposes the Pexels API as MCP tools and resources
// over a stdio transport.
package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/pexelstools/go-pexels-mcp/pexels"
)

// Server bridges an MCP session to the Pexels client. Every tool call
// maps to exactly one upstream request; the server holds no state
// beyond the client itself.
type Server struct {
	client *pexels.Client
	logger *zap.Logger
	mcp    *mcp.Server
}

// New builds a server with all tools and resources registered.
// A nil logger disables logging.
func New(client *pexels.Client, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		client: client,
		logger: logger.Named("server"),
	}
	s.mcp = mcp.NewServer(&mcp.Implementation{
		Name:    "pexels-mcp",
		Version: version,
	}, &mcp.ServerOptions{
		HasTools:     true,
		HasResources: true,
	})

	s.registerPhotoTools()
	s.registerVideoTools()
	s.registerCollectionTools()
	s.registerDownloadTools()
	s.registerAdminTools()
	s.registerResources()

	return s
}

// Run serves MCP over stdio until the context is canceled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server starting (stdio transport)")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to the given transport and returns the
// session. Used by tests to drive the server over in-memory pipes.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.mcp.Connect(ctx, t, nil)
}
