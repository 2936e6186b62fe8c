// Package main is the entry point for the workspaced server.
//
// workspaced exposes sandboxed filesystem operations on a single workspace
// directory through two transports:
//
//	REST API  (default)  service catalog, discovery, and tool execution
//	MCP stdio (-stdio)   JSON-RPC tool server for AI assistant clients
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# HTTP mode
//	./workspaced -port 8090 -workspace ./workspace
//
//	# MCP stdio mode
//	./workspaced -stdio -workspace ./workspace
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
