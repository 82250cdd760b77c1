// Copyright 2024 Alexandre Mahdhaoui
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mcpserver runs the iconforge tools as MCP servers over stdio.
package mcpserver

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with common functionality.
type Server struct {
	server *mcp.Server
	logger *log.Logger
}

// New creates a new MCP server with the given name and version.
// Logs go to stderr so they never corrupt the JSON-RPC stream on stdout.
func New(name, version string) *Server {
	return &Server{
		server: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: name}),
	}
}

// Logger returns the stderr logger of the server.
func (s *Server) Logger() *log.Logger {
	return s.logger
}

// RegisterTool registers a tool with the MCP server.
// The input schema is inferred from In.
func RegisterTool[In any](s *Server, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, In) (*mcp.CallToolResult, any, error)) {
	mcp.AddTool(s.server, tool, handler)
}

// Run serves JSON-RPC requests from stdin until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		s.logger.Error("MCP server failed", "error", err)
		return err
	}
	return nil
}

// RunDefault starts the MCP server with a background context.
func (s *Server) RunDefault() error {
	return s.Run(context.Background())
}
