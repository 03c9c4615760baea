// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the post repository for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/raido/internal/posts"
	"github.com/starford/raido/internal/storage"
)

// Server wraps the MCP server with post repository tools.
type Server struct {
	mcp   *server.MCPServer
	repo  *posts.Repository
	store storage.Provider
}

// New creates a new MCP server with all tools registered. The surface is
// read-only: posts change only by editing the backing files out-of-band.
func New(repo *posts.Repository, store storage.Provider) *Server {
	s := &Server{repo: repo, store: store}

	s.mcp = server.NewMCPServer(
		"Raido",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_posts",
		mcp.WithDescription("List all posts with their metadata, sorted by descending date."),
	), s.listPosts)

	s.mcp.AddTool(mcp.NewTool("read_post",
		mcp.WithDescription("Read the raw Markdown source of a post, frontmatter included."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Post identifier (filename without .md)")),
	), s.readPost)

	s.mcp.AddTool(mcp.NewTool("get_post_format",
		mcp.WithDescription("Returns the canonical post file format contract."),
	), s.getPostFormat)

	// Resource: post format contract.
	s.mcp.AddResource(
		mcp.NewResource("raido://post-format", "Post Format Contract",
			mcp.WithResourceDescription("Canonical Markdown post format that all posts follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readPostFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listPosts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if strings.Contains(id, "/") || strings.Contains(id, "\\") {
		return mcp.NewToolResultError(fmt.Sprintf("invalid id: %s", id)), nil
	}
	data, err := s.store.Read(id + ".md")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) getPostFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(PostFormatContract), nil
}

func (s *Server) readPostFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "raido://post-format",
			MIMEType: "text/markdown",
			Text:     PostFormatContract,
		},
	}, nil
}
