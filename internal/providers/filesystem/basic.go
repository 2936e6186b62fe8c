package filesystem

import (
	"context"
	"fmt"

	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// BasicOps handles single-file operations
type BasicOps struct {
	*FilesystemOps
}

// GetTools returns basic file operation tool definitions
func (b *BasicOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.read_file",
			Name:        "Read File",
			Description: "Read the contents of a file from the workspace",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "File path relative to workspace", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.write_file",
			Name:        "Write File",
			Description: "Write content to a file in the workspace, creating it if needed (overwrites existing)",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "File path relative to workspace", Required: true},
				{Name: "content", Type: "string", Description: "Content to write", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.append_file",
			Name:        "Append to File",
			Description: "Append content to an existing file in the workspace",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "File path relative to workspace", Required: true},
				{Name: "content", Type: "string", Description: "Content to append", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.delete_file",
			Name:        "Delete File",
			Description: "Delete a single file from the workspace",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "File path relative to workspace", Required: true},
			},
			Returns: "string",
		},
	}
}

// Read reads a file as UTF-8 text
func (b *BasicOps) Read(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	filename, ok := params["filename"].(string)
	if !ok || filename == "" {
		return Failure("filename parameter required")
	}

	abs, err := b.WS.Resolve(filename)
	if err != nil {
		return FailErr(err)
	}
	if !b.WS.IsFile(abs) {
		return FailErr(&workspace.NotFoundError{Path: filename, Kind: "file"})
	}

	content, err := b.WS.ReadFile(abs)
	if err != nil {
		return FailErr(err)
	}

	return Success(map[string]interface{}{
		"filename": filename,
		"content":  content,
		"size":     len(content),
	}, fmt.Sprintf("--- %s ---\n%s", filename, content))
}

// Write writes content to a file, creating parent directories as needed.
// Never fails because the target already exists.
func (b *BasicOps) Write(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	filename, ok := params["filename"].(string)
	if !ok || filename == "" {
		return Failure("filename parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	abs, err := b.WS.Resolve(filename)
	if err != nil {
		return FailErr(err)
	}
	if err := b.WS.WriteFile(abs, content); err != nil {
		return FailErr(err)
	}

	return Success(map[string]interface{}{
		"written":  true,
		"filename": filename,
		"size":     len(content),
	}, fmt.Sprintf("Updated %s", filename))
}

// Append appends content to an existing file. Unlike Write, the target must
// already exist.
func (b *BasicOps) Append(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	filename, ok := params["filename"].(string)
	if !ok || filename == "" {
		return Failure("filename parameter required")
	}
	content, ok := params["content"].(string)
	if !ok {
		return Failure("content parameter required")
	}

	abs, err := b.WS.Resolve(filename)
	if err != nil {
		return FailErr(err)
	}
	if !b.WS.IsFile(abs) {
		return FailErr(&workspace.NotFoundError{Path: filename, Kind: "file"})
	}
	if err := b.WS.AppendFile(abs, content); err != nil {
		return FailErr(err)
	}

	return Success(map[string]interface{}{
		"appended": true,
		"filename": filename,
		"size":     len(content),
	}, fmt.Sprintf("Appended content to %s", filename))
}

// Delete removes a single file. Directories are refused and directed to the
// directory delete operation.
func (b *BasicOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	filename, ok := params["filename"].(string)
	if !ok || filename == "" {
		return Failure("filename parameter required")
	}

	abs, err := b.WS.Resolve(filename)
	if err != nil {
		return FailErr(err)
	}
	if !b.WS.Exists(abs) {
		return FailErr(&workspace.NotFoundError{Path: filename, Kind: "file"})
	}
	if b.WS.IsDir(abs) {
		return FailErr(&workspace.WrongTypeError{Path: filename, Message: "use delete_directory for directories"})
	}
	if err := b.WS.RemoveFile(abs); err != nil {
		return FailErr(err)
	}

	return Success(map[string]interface{}{
		"deleted":  true,
		"filename": filename,
	}, fmt.Sprintf("Deleted %s", filename))
}
