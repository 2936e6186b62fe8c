package filesystem

import (
	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// FilesystemOps provides common state for the operation modules
type FilesystemOps struct {
	WS *workspace.Workspace
}

// SearchMatch is one file matching a content search
type SearchMatch struct {
	File    string `json:"file"`
	Matches int    `json:"matches"`
}

// Success helper
func Success(data map[string]interface{}, text string) (*types.Result, error) {
	return &types.Result{Success: true, Data: data, Text: text}, nil
}

// Failure helper for argument validation errors
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{
		Success: false,
		Code:    workspace.CodeInvalidArgument,
		Error:   &msg,
	}, nil
}

// FailErr builds a failure result from a sandbox error, carrying its kind code
func FailErr(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Code:    workspace.CodeOf(err),
		Error:   &msg,
	}, nil
}
