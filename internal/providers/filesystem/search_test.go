package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workspacefs/workspaced/internal/workspace"
)

func seedSearchTree(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "greet.txt"), []byte("Hello World hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "docs", "note.md"), []byte("hello from the notes"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "quiet.txt"), []byte("nothing to see"), 0o644))
}

// TestSearchOpsGetTools tests the search operations tool definitions
func TestSearchOpsGetTools(t *testing.T) {
	ops, _ := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}

	tools := search.GetTools()
	assert.Equal(t, 2, len(tools))
	assert.Equal(t, "filesystem.search_files", tools[0].ID)
	assert.Equal(t, "filesystem.find_files", tools[1].ID)
}

// TestSearchOpsSearchCaseInsensitive tests that matching ignores case and
// counts every occurrence
func TestSearchOpsSearchCaseInsensitive(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}
	seedSearchTree(t, root)

	result, err := search.Search(context.Background(), map[string]interface{}{"query": "HELLO"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Data["count"])

	matches, ok := result.Data["matches"].([]SearchMatch)
	require.True(t, ok)
	require.Len(t, matches, 2)
	assert.Equal(t, SearchMatch{File: "docs/note.md", Matches: 1}, matches[0])
	assert.Equal(t, SearchMatch{File: "greet.txt", Matches: 2}, matches[1])

	assert.Contains(t, result.Text, "Found 2 files containing 'HELLO':\n")
	assert.Contains(t, result.Text, "- greet.txt (2 matches)\n")
	assert.Contains(t, result.Text, "- docs/note.md (1 matches)\n")
}

// TestSearchOpsSearchExtensionFilter tests restricting a search by suffix
func TestSearchOpsSearchExtensionFilter(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}
	seedSearchTree(t, root)

	result, err := search.Search(context.Background(), map[string]interface{}{
		"query":     "hello",
		"extension": ".md",
	}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Data["count"])
	assert.Contains(t, result.Text, "Found 1 files containing 'hello' with extension '.md':\n")
}

// TestSearchOpsSearchNoMatches tests the zero-result rendering
func TestSearchOpsSearchNoMatches(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}
	seedSearchTree(t, root)

	result, err := search.Search(context.Background(), map[string]interface{}{"query": "xyzzy"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Data["count"])
	assert.Equal(t, "Found 0 files containing 'xyzzy':\n", result.Text)
}

// TestSearchOpsSearchSkipsBinary tests that unreadable content is skipped,
// not reported as an error
func TestSearchOpsSearchSkipsBinary(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}

	require.NoError(t, os.WriteFile(filepath.Join(root, "data.bin"), append([]byte{0x00, 0xff, 0xfe}, []byte("hello")...), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "plain.txt"), []byte("hello"), 0o644))

	result, err := search.Search(context.Background(), map[string]interface{}{"query": "hello"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Data["count"])
	assert.Contains(t, result.Text, "- plain.txt (1 matches)\n")
	assert.NotContains(t, result.Text, "data.bin")
}

// TestSearchOpsSearchReadsMagicPrefixedText tests that a file sniffing as
// a binary type is still searched when its content is valid UTF-8
func TestSearchOpsSearchReadsMagicPrefixedText(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}

	require.NoError(t, os.WriteFile(filepath.Join(root, "doc.pdf"), []byte("%PDF-1.4 hello world"), 0o644))

	result, err := search.Search(context.Background(), map[string]interface{}{"query": "hello"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Data["count"])
	assert.Contains(t, result.Text, "- doc.pdf (1 matches)\n")
}

// TestSearchOpsSearchRequiresQuery tests argument validation
func TestSearchOpsSearchRequiresQuery(t *testing.T) {
	ops, _ := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}

	result, err := search.Search(context.Background(), map[string]interface{}{}, nil)
	assert.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, workspace.CodeInvalidArgument, result.Code)
}

// TestSearchOpsFindSuffix tests that patterns match on name suffix only
func TestSearchOpsFindSuffix(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}
	seedSearchTree(t, root)

	result, err := search.Find(context.Background(), map[string]interface{}{"pattern": "*.txt"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"greet.txt", "quiet.txt"}, result.Data["matches"])
	assert.Equal(t, "Found 2 files matching pattern '*.txt':\ngreet.txt\nquiet.txt", result.Text)
}

// TestSearchOpsFindStarMatchesAll tests that a bare star lists every file
func TestSearchOpsFindStarMatchesAll(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}
	seedSearchTree(t, root)

	result, err := search.Find(context.Background(), map[string]interface{}{"pattern": "*"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"docs/note.md", "greet.txt", "quiet.txt"}, result.Data["matches"])
}

// TestSearchOpsFindDefaultsToStar tests the default pattern
func TestSearchOpsFindDefaultsToStar(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}
	seedSearchTree(t, root)

	result, err := search.Find(context.Background(), map[string]interface{}{}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Data["count"])
}

// TestSearchOpsFindNoGlobSemantics tests that mid-name wildcards are not
// interpreted; only the trailing suffix matters
func TestSearchOpsFindNoGlobSemantics(t *testing.T) {
	ops, root := newTestOps(t)
	search := &SearchOps{FilesystemOps: ops}

	require.NoError(t, os.WriteFile(filepath.Join(root, "report.txt"), []byte("x"), 0o644))

	result, err := search.Find(context.Background(), map[string]interface{}{"pattern": "ort.txt"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{"report.txt"}, result.Data["matches"])

	result, err = search.Find(context.Background(), map[string]interface{}{"pattern": "z.txt"}, nil)
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, []string{}, result.Data["matches"])
	assert.Equal(t, "Found 0 files matching pattern 'z.txt':\nNo files found", result.Text)
}
