package mcp

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/workspacefs/workspaced/internal/infrastructure/logging"
	"github.com/workspacefs/workspaced/internal/service"
	"github.com/workspacefs/workspaced/internal/shared/id"
	"github.com/workspacefs/workspaced/internal/types"
)

// Server exposes the service registry over the Model Context Protocol.
// Tools are published under their bare names (read_file, list_files) and
// routed back to the namespaced registry IDs.
type Server struct {
	mcp      *server.MCPServer
	registry *service.Registry
	logger   *logging.Logger
}

// New creates an MCP server publishing every tool of every registered
// service.
func New(registry *service.Registry, version string, logger *logging.Logger) *Server {
	s := &Server{
		mcp:      server.NewMCPServer("workspaced", version),
		registry: registry,
		logger:   logger,
	}

	for _, svc := range registry.List(nil) {
		for _, tool := range svc.Tools {
			s.mcp.AddTool(buildTool(tool), s.handlerFor(tool.ID))
		}
	}

	return s
}

// ServeStdio reads JSON-RPC requests from stdin and writes responses to
// stdout until EOF.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}

// buildTool translates a catalog tool into its MCP declaration
func buildTool(tool types.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}

	for _, param := range tool.Parameters {
		var propOpts []mcp.PropertyOption
		propOpts = append(propOpts, mcp.Description(param.Description))
		if param.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch param.Type {
		case "number":
			if def, ok := param.Default.(float64); ok {
				propOpts = append(propOpts, mcp.DefaultNumber(def))
			}
			opts = append(opts, mcp.WithNumber(param.Name, propOpts...))
		case "boolean":
			if def, ok := param.Default.(bool); ok {
				propOpts = append(propOpts, mcp.DefaultBool(def))
			}
			opts = append(opts, mcp.WithBoolean(param.Name, propOpts...))
		default:
			if def, ok := param.Default.(string); ok {
				propOpts = append(propOpts, mcp.DefaultString(def))
			}
			opts = append(opts, mcp.WithString(param.Name, propOpts...))
		}
	}

	return mcp.NewTool(bareName(tool.ID), opts...)
}

// handlerFor builds the MCP handler executing the given registry tool
func (s *Server) handlerFor(toolID string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := id.NewCallID()
		start := time.Now()
		params := req.GetArguments()

		result, err := s.registry.Execute(ctx, toolID, params, &types.Context{})
		if err != nil {
			s.logger.Error("tool call failed",
				zap.String("call_id", string(callID)),
				zap.String("tool_id", toolID),
				zap.Error(err),
			)
			return mcp.NewToolResultError(err.Error()), nil
		}

		status := "success"
		if !result.Success {
			status = "failure"
		}
		s.logger.Info("tool call",
			zap.String("call_id", string(callID)),
			zap.String("tool_id", toolID),
			zap.String("status", status),
			zap.Duration("duration", time.Since(start)),
		)

		if !result.Success {
			message := "tool call failed"
			if result.Error != nil {
				message = *result.Error
			}
			return mcp.NewToolResultError(message), nil
		}

		res := mcp.NewToolResultText(result.Text)
		if len(result.Data) > 0 {
			if payload, err := sonic.MarshalString(result.Data); err == nil {
				res.Content = append(res.Content, mcp.NewTextContent(payload))
			}
		}
		return res, nil
	}
}

// bareName strips the service prefix from a tool ID
func bareName(toolID string) string {
	if idx := strings.IndexByte(toolID, '.'); idx >= 0 {
		return toolID[idx+1:]
	}
	return toolID
}
