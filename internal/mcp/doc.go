// Package mcp exposes the tool catalog over the Model Context Protocol.
//
// The server is started as a subprocess by MCP clients and speaks JSON-RPC
// over stdio. Every tool of every registered service is published under its
// bare name; parameter declarations are derived from the catalog, so the
// two transports always agree on the tool surface.
//
// Successful calls return the human-readable text rendering followed by the
// structured payload as JSON. Failures map to MCP error results carrying
// the error message.
package mcp
