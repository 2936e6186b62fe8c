// Package http provides the REST API surface of the server.
//
// Endpoints:
//   - GET  /                  liveness check
//   - GET  /health            detailed health with registry and metric stats
//   - GET  /services          service catalog, optionally filtered by category
//   - POST /services/discover intent-based service discovery
//   - POST /services/execute  tool execution
//   - GET  /metrics           Prometheus exposition
//
// Every tool execution is tagged with a sortable call ID and logged with
// its outcome.
package http
