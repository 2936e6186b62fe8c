package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

func newTestOps(t *testing.T) (*FilesystemOps, string) {
	t.Helper()
	root := t.TempDir()
	ws, err := workspace.New(root)
	require.NoError(t, err)
	return &FilesystemOps{WS: ws}, ws.Root()
}

// TestBasicOpsGetTools tests the basic operations tool definitions
func TestBasicOpsGetTools(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}

	tools := basic.GetTools()
	assert.Equal(t, 4, len(tools))

	toolIDs := make(map[string]bool)
	for _, tool := range tools {
		toolIDs[tool.ID] = true
		assert.NotEmpty(t, tool.Name)
		assert.NotEmpty(t, tool.Description)
	}

	assert.True(t, toolIDs["filesystem.read_file"])
	assert.True(t, toolIDs["filesystem.write_file"])
	assert.True(t, toolIDs["filesystem.append_file"])
	assert.True(t, toolIDs["filesystem.delete_file"])
}

// TestBasicOpsWriteThenRead tests that written content reads back unchanged
func TestBasicOpsWriteThenRead(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}
	ctx := context.Background()

	result, err := basic.Write(ctx, map[string]interface{}{
		"filename": "notes/test.txt",
		"content":  "Hello, World!",
	}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, true, result.Data["written"])
	assert.Equal(t, "notes/test.txt", result.Data["filename"])
	assert.Equal(t, 13, result.Data["size"])
	assert.Equal(t, "Updated notes/test.txt", result.Text)

	result, err = basic.Read(ctx, map[string]interface{}{
		"filename": "notes/test.txt",
	}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Hello, World!", result.Data["content"])
	assert.Equal(t, "--- notes/test.txt ---\nHello, World!", result.Text)
}

// TestBasicOpsWriteOverwrites tests that a second write replaces the content
func TestBasicOpsWriteOverwrites(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}
	ctx := context.Background()

	for _, content := range []string{"first", "second"} {
		result, err := basic.Write(ctx, map[string]interface{}{
			"filename": "a.txt",
			"content":  content,
		}, nil)
		assert.NoError(t, err)
		assert.True(t, result.Success)
	}

	result, _ := basic.Read(ctx, map[string]interface{}{"filename": "a.txt"}, nil)
	assert.Equal(t, "second", result.Data["content"])
}

// TestBasicOpsReadMissing tests reading a file that does not exist
func TestBasicOpsReadMissing(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}

	result, err := basic.Read(context.Background(), map[string]interface{}{
		"filename": "nope.txt",
	}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeNotFound, result.Code)
	require.NotNil(t, result.Error)
	assert.Equal(t, "file not found", *result.Error)
}

// TestBasicOpsReadRejectsBinary tests the text-only read contract
func TestBasicOpsReadRejectsBinary(t *testing.T) {
	ops, root := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}

	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte{0xff, 0xfe, 0x00, 0x80}, 0o644))

	result, err := basic.Read(context.Background(), map[string]interface{}{
		"filename": "blob.bin",
	}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeDecodeError, result.Code)
}

// TestBasicOpsReadDirectory tests that reading a directory path fails
func TestBasicOpsReadDirectory(t *testing.T) {
	ops, root := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}

	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))

	result, err := basic.Read(context.Background(), map[string]interface{}{
		"filename": "sub",
	}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeNotFound, result.Code)
}

// TestBasicOpsAppend tests appending to an existing file
func TestBasicOpsAppend(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}
	ctx := context.Background()

	_, err := basic.Write(ctx, map[string]interface{}{
		"filename": "log.txt",
		"content":  "Hello, ",
	}, nil)
	assert.NoError(t, err)

	result, err := basic.Append(ctx, map[string]interface{}{
		"filename": "log.txt",
		"content":  "World!",
	}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, true, result.Data["appended"])
	assert.Equal(t, "Appended content to log.txt", result.Text)

	result, _ = basic.Read(ctx, map[string]interface{}{"filename": "log.txt"}, nil)
	assert.Equal(t, "Hello, World!", result.Data["content"])
}

// TestBasicOpsAppendMissing tests that append refuses to create the file
func TestBasicOpsAppendMissing(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}

	result, err := basic.Append(context.Background(), map[string]interface{}{
		"filename": "absent.txt",
		"content":  "data",
	}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeNotFound, result.Code)
}

// TestBasicOpsDelete tests deleting a file
func TestBasicOpsDelete(t *testing.T) {
	ops, root := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}
	ctx := context.Background()

	require.NoError(t, os.WriteFile(filepath.Join(root, "gone.txt"), []byte("x"), 0o644))

	result, err := basic.Delete(ctx, map[string]interface{}{"filename": "gone.txt"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Deleted gone.txt", result.Text)
	assert.NoFileExists(t, filepath.Join(root, "gone.txt"))

	// Second delete reports not found.
	result, err = basic.Delete(ctx, map[string]interface{}{"filename": "gone.txt"}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeNotFound, result.Code)
}

// TestBasicOpsDeleteDirectoryRefused tests that delete_file refuses directories
func TestBasicOpsDeleteDirectoryRefused(t *testing.T) {
	ops, root := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}

	require.NoError(t, os.Mkdir(filepath.Join(root, "dir"), 0o755))

	result, err := basic.Delete(context.Background(), map[string]interface{}{"filename": "dir"}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeInvalidArgument, result.Code)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "delete_directory")
	assert.DirExists(t, filepath.Join(root, "dir"))
}

// TestBasicOpsRejectsTraversal tests that every file operation refuses paths
// escaping the workspace
func TestBasicOpsRejectsTraversal(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}
	ctx := context.Background()

	params := map[string]interface{}{
		"filename": "../escape.txt",
		"content":  "x",
	}

	for _, call := range []struct {
		name string
		run  func() (*types.Result, error)
	}{
		{"read", func() (*types.Result, error) { return basic.Read(ctx, params, nil) }},
		{"write", func() (*types.Result, error) { return basic.Write(ctx, params, nil) }},
		{"append", func() (*types.Result, error) { return basic.Append(ctx, params, nil) }},
		{"delete", func() (*types.Result, error) { return basic.Delete(ctx, params, nil) }},
	} {
		result, err := call.run()
		assert.NoError(t, err, call.name)
		assert.False(t, result.Success, call.name)
		assert.Equal(t, workspace.CodePermissionDenied, result.Code, call.name)
	}
}

// TestBasicOpsMissingParams tests argument validation
func TestBasicOpsMissingParams(t *testing.T) {
	ops, _ := newTestOps(t)
	basic := &BasicOps{FilesystemOps: ops}
	ctx := context.Background()

	result, err := basic.Read(ctx, map[string]interface{}{}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeInvalidArgument, result.Code)

	result, err = basic.Write(ctx, map[string]interface{}{"filename": "a.txt"}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeInvalidArgument, result.Code)
}
