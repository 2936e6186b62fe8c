package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"
	"github.com/workspacefs/workspaced/internal/types"
	"github.com/workspacefs/workspaced/internal/workspace"
)

// SearchOps handles content search and filename matching
type SearchOps struct {
	*FilesystemOps
}

// GetTools returns search operation tool definitions
func (s *SearchOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "filesystem.search_files",
			Name:        "Search Files",
			Description: "Search workspace files containing the query text (case-insensitive)",
			Parameters: []types.Parameter{
				{Name: "query", Type: "string", Description: "Text to search for", Required: true},
				{Name: "extension", Type: "string", Description: "Restrict to files whose name ends with this suffix", Required: false, Default: ""},
			},
			Returns: "array",
		},
		{
			ID:          "filesystem.find_files",
			Name:        "Find Files",
			Description: "Find workspace files whose name matches a pattern (e.g. *.txt)",
			Parameters: []types.Parameter{
				{Name: "pattern", Type: "string", Description: "Filename pattern; '*' matches everything", Required: false, Default: "*"},
			},
			Returns: "array",
		},
	}
}

// Search walks every file under the workspace root and reports those whose
// content contains the query, case-insensitively, with occurrence counts.
// Files that cannot be opened or are not text are skipped, not reported.
func (s *SearchOps) Search(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	query, ok := params["query"].(string)
	if !ok || query == "" {
		return Failure("query parameter required")
	}
	extension, _ := params["extension"].(string)

	root := s.WS.Root()
	queryLower := strings.ToLower(query)

	var mu sync.Mutex
	var matches []SearchMatch

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		if extension != "" && !strings.HasSuffix(d.Name(), extension) {
			return nil
		}
		if skipAsBinary(p) {
			return nil
		}

		content, err := s.WS.ReadFile(p)
		if err != nil {
			// Binary or unreadable files are skipped by policy.
			return nil
		}
		count := strings.Count(strings.ToLower(content), queryLower)
		if count == 0 {
			return nil
		}

		mu.Lock()
		matches = append(matches, SearchMatch{File: s.WS.Rel(p), Matches: count})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return FailErr(&workspace.IOError{Op: "search", Path: "", Cause: err})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].File < matches[j].File })
	if matches == nil {
		matches = []SearchMatch{}
	}

	text := fmt.Sprintf("Found %d files containing '%s'", len(matches), query)
	if extension != "" {
		text += fmt.Sprintf(" with extension '%s'", extension)
	}
	text += ":\n"
	for _, m := range matches {
		text += fmt.Sprintf("- %s (%d matches)\n", m.File, m.Matches)
	}

	return Success(map[string]interface{}{
		"query":   query,
		"matches": matches,
		"count":   len(matches),
	}, text)
}

// Find walks every file under the workspace root and reports those whose
// name matches the pattern. A bare "*" matches everything; any other pattern
// is a name-suffix match after stripping leading '*' characters. This is
// deliberately not glob matching.
func (s *SearchOps) Find(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	pattern, _ := params["pattern"].(string)
	if pattern == "" {
		pattern = "*"
	}
	suffix := strings.TrimLeft(pattern, "*")

	root := s.WS.Root()

	var mu sync.Mutex
	var matches []string

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(p string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}
		if pattern != "*" && !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}

		mu.Lock()
		matches = append(matches, s.WS.Rel(p))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return FailErr(&workspace.IOError{Op: "find", Path: "", Cause: err})
	}

	sort.Strings(matches)
	if matches == nil {
		matches = []string{}
	}

	text := fmt.Sprintf("Found %d files matching pattern '%s':\n", len(matches), pattern)
	if len(matches) > 0 {
		text += strings.Join(matches, "\n")
	} else {
		text += "No files found"
	}

	return Success(map[string]interface{}{
		"pattern": pattern,
		"matches": matches,
		"count":   len(matches),
	}, text)
}

// skipAsBinary is a fast-path filter that avoids reading large binaries
// whole only to discard them. The sniffed MIME type is advisory: a file
// whose leading bytes decode as UTF-8 is searched whatever magic sits at
// its head, and the full read still rejects content that turns binary
// later.
func skipAsBinary(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return true
	}
	for mt := mtype; mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return false
		}
	}
	if strings.HasPrefix(mtype.String(), "text/") {
		return false
	}
	return !headerIsUTF8(path)
}

// headerIsUTF8 reports whether the leading bytes of the file decode as
// UTF-8. The read boundary may split a multibyte rune, so up to three
// trailing bytes are trimmed before validating.
func headerIsUTF8(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false
	}
	head := buf[:n]
	for trim := 0; trim <= 3; trim++ {
		if utf8.Valid(head) {
			return true
		}
		if len(head) == 0 {
			break
		}
		head = head[:len(head)-1]
	}
	return false
}
