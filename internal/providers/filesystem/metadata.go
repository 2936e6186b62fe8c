package filesystem

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// MetadataOps handles file metadata and workspace statistics
type MetadataOps struct {
	*FilesystemOps
}

// timestampLayout renders timestamps as local calendar date-time, ISO-8601 style
const timestampLayout = "2006-01-02T15:04:05"

// GetTools returns metadata operation tool definitions
func (m *MetadataOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.file_info",
			Name:        "File Info",
			Description: "Get metadata about a file or directory",
			Parameters: []types.Parameter{
				{Name: "filename", Type: "string", Description: "File or directory path relative to workspace", Required: true},
			},
			Returns: "object",
		},
		{
			ID:          "filesystem.get_workspace_info",
			Name:        "Workspace Info",
			Description: "Get aggregate statistics about the whole workspace",
			Parameters:  []types.Parameter{},
			Returns:     "object",
		},
	}
}

// Info returns metadata for a file or directory. Directories additionally
// report a non-recursive count of immediate children.
func (m *MetadataOps) Info(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	filename, _ := params["filename"].(string)

	abs, err := m.WS.Resolve(filename)
	if err != nil {
		return FailErr(err)
	}
	info, err := m.WS.Stat(abs)
	if err != nil {
		return FailErr(err)
	}

	isDir := info.IsDir()
	size := info.Size()
	if isDir {
		size = 0
	}
	created := createdTime(info).Format(timestampLayout)
	modified := info.ModTime().Format(timestampLayout)

	data := map[string]interface{}{
		"name":          filename,
		"is_directory":  isDir,
		"size":          size,
		"created":       created,
		"modified":      modified,
		"absolute_path": abs,
	}

	text := fmt.Sprintf("Info for %s:\n", filename)
	text += fmt.Sprintf("Name: %s\n", filename)
	text += fmt.Sprintf("Is Directory: %t\n", isDir)
	text += fmt.Sprintf("Size: %d\n", size)
	text += fmt.Sprintf("Created: %s\n", created)
	text += fmt.Sprintf("Modified: %s\n", modified)

	if isDir {
		children, err := m.WS.List(abs)
		if err != nil {
			return FailErr(err)
		}
		dirCount := 0
		for _, entry := range children {
			if entry.IsDir() {
				dirCount++
			}
		}
		fileCount := len(children) - dirCount
		contents := fmt.Sprintf("%d files, %d directories", fileCount, dirCount)
		data["contents"] = contents
		text += fmt.Sprintf("Contents: %s\n", contents)
	}

	return Success(data, text)
}

// WorkspaceInfo walks the whole workspace summing file count, directory
// count, and byte size. Unreadable entries are excluded from the totals.
func (m *MetadataOps) WorkspaceInfo(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	root := m.WS.Root()

	var mu sync.Mutex
	var totalSize int64
	var fileCount, dirCount int

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Skip, don't fail: aggregate operations are best-effort.
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != root {
				mu.Lock()
				dirCount++
				mu.Unlock()
			}
			return nil
		}
		info, infoErr := d.Info()
		mu.Lock()
		fileCount++
		if infoErr == nil {
			totalSize += info.Size()
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return FailErr(&workspace.IOError{Op: "walk", Path: "", Cause: err})
	}

	humanSize := formatSize(totalSize)

	text := "Workspace Information:\n"
	text += fmt.Sprintf("Path: %s\n", root)
	text += fmt.Sprintf("Total Files: %d\n", fileCount)
	text += fmt.Sprintf("Total Directories: %d\n", dirCount)
	text += fmt.Sprintf("Total Size: %s\n", humanSize)

	return Success(map[string]interface{}{
		"path":              root,
		"total_files":       fileCount,
		"total_directories": dirCount,
		"total_bytes":       totalSize,
		"total_size":        humanSize,
	}, text)
}

// formatSize renders a byte count in binary units, two decimal places.
func formatSize(bytes int64) string {
	size := float64(bytes)
	units := []string{"B", "KB", "MB", "GB"}
	idx := 0
	for size >= 1024 && idx < len(units)-1 {
		size /= 1024
		idx++
	}
	return fmt.Sprintf("%.2f %s", size, units[idx])
}
