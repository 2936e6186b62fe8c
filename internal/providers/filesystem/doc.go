// Package filesystem provides the workspace file-operation catalog.
//
// This package is organized into specialized modules:
//   - basic: single-file operations (read, write, append, delete)
//   - directory: directory operations (list, create, delete)
//   - metadata: file metadata and workspace statistics
//   - search: content search and filename matching
//
// All operations:
//   - Resolve caller paths through the workspace sandbox
//   - Return a structured payload plus a human-readable text rendering
//   - Surface a stable error kind code on failure
//
// Single-target operations fail whole on the first error. Scan operations
// (search, workspace statistics) skip unreadable files and aggregate
// best-effort.
package filesystem
