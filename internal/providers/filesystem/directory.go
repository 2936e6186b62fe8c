package filesystem

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// DirectoryOps handles directory operations
type DirectoryOps struct {
	*FilesystemOps
}

// GetTools returns directory operation tool definitions
func (d *DirectoryOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.list_files",
			Name:        "List Files",
			Description: "List all files and directories in a workspace directory",
			Parameters: []types.Parameter{
				{Name: "directory", Type: "string", Description: "Directory path relative to workspace", Required: false, Default: ""},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.create_directory",
			Name:        "Create Directory",
			Description: "Create a new directory in the workspace (with intermediate directories)",
			Parameters: []types.Parameter{
				{Name: "directory", Type: "string", Description: "Directory path relative to workspace", Required: true},
			},
			Returns: "string",
		},
		{
			ID:          "filesystem.delete_directory",
			Name:        "Delete Directory",
			Description: "Delete a directory and all its contents from the workspace",
			Parameters: []types.Parameter{
				{Name: "directory", Type: "string", Description: "Directory path relative to workspace", Required: true},
			},
			Returns: "string",
		},
	}
}

// List lists immediate children of a directory: directories first (marked
// with a trailing separator), then files, each group sorted.
func (d *DirectoryOps) List(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	directory, _ := params["directory"].(string)

	abs, err := d.WS.Resolve(directory)
	if err != nil {
		return FailErr(err)
	}
	if !d.WS.Exists(abs) {
		return FailErr(&workspace.NotFoundError{Path: directory, Kind: "directory"})
	}
	if !d.WS.IsDir(abs) {
		return FailErr(&workspace.WrongTypeError{Path: directory, Message: fmt.Sprintf("'%s' is not a directory", directory)})
	}

	children, err := d.WS.List(abs)
	if err != nil {
		return FailErr(err)
	}

	var dirs, files []string
	for _, entry := range children {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name()+"/")
		} else {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(files)
	entries := append(dirs, files...)
	if entries == nil {
		entries = []string{}
	}

	text := "Directory is empty"
	if len(entries) > 0 {
		text = fmt.Sprintf("Contents of '%s':\n%s", directory, strings.Join(entries, "\n"))
	}

	return Success(map[string]interface{}{
		"directory": directory,
		"entries":   entries,
		"count":     len(entries),
	}, text)
}

// Create creates a new directory. Fails if the target already exists as a
// file or directory.
func (d *DirectoryOps) Create(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	directory, ok := params["directory"].(string)
	if !ok || directory == "" {
		return Failure("directory parameter required")
	}

	abs, err := d.WS.Resolve(directory)
	if err != nil {
		return FailErr(err)
	}
	if err := d.WS.Mkdir(abs); err != nil {
		return FailErr(err)
	}

	return Success(map[string]interface{}{
		"created":   true,
		"directory": directory,
	}, fmt.Sprintf("Created directory %s", directory))
}

// Delete removes a directory recursively. The workspace root itself is
// guarded against deletion under every alias form.
func (d *DirectoryOps) Delete(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	directory, _ := params["directory"].(string)

	abs, err := d.WS.Resolve(directory)
	if err != nil {
		return FailErr(err)
	}
	if !d.WS.Exists(abs) {
		return FailErr(&workspace.NotFoundError{Path: directory, Kind: "directory"})
	}
	if !d.WS.IsDir(abs) {
		return FailErr(&workspace.WrongTypeError{Path: directory, Message: "path is not a directory"})
	}
	if err := d.WS.RemoveTree(abs); err != nil {
		return FailErr(err)
	}

	return Success(map[string]interface{}{
		"deleted":   true,
		"directory": directory,
	}, fmt.Sprintf("Deleted directory %s and all its contents", directory))
}
