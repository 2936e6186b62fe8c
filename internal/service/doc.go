// Package service provides the registry that routes tool calls to providers.
//
// The registry maintains a catalog of service providers and handles service
// listing, intent-based discovery, and tool execution. Tool IDs are
// namespaced as "service.tool"; the registry routes on the prefix and the
// provider dispatches on the full ID.
//
// Discovery scores services against a free-text intent by keyword matches
// in the name, description, capabilities, and category, and returns the top
// matches ranked by score.
package service
