package filesystem

import (
	"context"
	"fmt"

	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// Provider implements workspace filesystem operations
type Provider struct {
	basic     *BasicOps
	directory *DirectoryOps
	metadata  *MetadataOps
	search    *SearchOps
}

// NewProvider creates a filesystem provider rooted at the given workspace
func NewProvider(ws *workspace.Workspace) *Provider {
	ops := &FilesystemOps{WS: ws}
	return &Provider{
		basic:     &BasicOps{FilesystemOps: ops},
		directory: &DirectoryOps{FilesystemOps: ops},
		metadata:  &MetadataOps{FilesystemOps: ops},
		search:    &SearchOps{FilesystemOps: ops},
	}
}

// Workspace returns the sandbox backing this provider
func (p *Provider) Workspace() *workspace.Workspace {
	return p.basic.WS
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	var tools []types.Tool
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, p.search.GetTools()...)

	return types.Service{
		ID:          "filesystem",
		Name:        "Workspace Filesystem",
		Description: "Sandboxed file and directory operations within a workspace root",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"read",
			"write",
			"append",
			"delete",
			"list",
			"mkdir",
			"stat",
			"search",
			"find",
		},
		Tools: tools,
	}
}

// Execute runs a filesystem operation
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "filesystem.list_files":
		return p.directory.List(ctx, params, appCtx)
	case "filesystem.create_directory":
		return p.directory.Create(ctx, params, appCtx)
	case "filesystem.delete_directory":
		return p.directory.Delete(ctx, params, appCtx)
	case "filesystem.read_file":
		return p.basic.Read(ctx, params, appCtx)
	case "filesystem.write_file":
		return p.basic.Write(ctx, params, appCtx)
	case "filesystem.append_file":
		return p.basic.Append(ctx, params, appCtx)
	case "filesystem.delete_file":
		return p.basic.Delete(ctx, params, appCtx)
	case "filesystem.file_info":
		return p.metadata.Info(ctx, params, appCtx)
	case "filesystem.get_workspace_info":
		return p.metadata.WorkspaceInfo(ctx, params, appCtx)
	case "filesystem.search_files":
		return p.search.Search(ctx, params, appCtx)
	case "filesystem.find_files":
		return p.search.Find(ctx, params, appCtx)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
