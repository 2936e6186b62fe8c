package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Workspace is a sandboxed root directory. All paths handed to primitives
// must come from Resolve.
type Workspace struct {
	root string
}

// New creates the workspace root if absent and returns a Workspace anchored
// at its canonical absolute path.
func New(root string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &IOError{Op: "resolve root", Path: root, Cause: err}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, &IOError{Op: "create root", Path: abs, Cause: err}
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, &IOError{Op: "canonicalize root", Path: abs, Cause: err}
	}
	return &Workspace{root: canon}, nil
}

// Root returns the canonical absolute root path.
func (w *Workspace) Root() string { return w.root }

// Resolve joins a caller-supplied path against the root and returns the
// canonical absolute result, verified to remain inside the workspace.
// Absolute inputs are accepted only when they already point inside the root.
func (w *Workspace) Resolve(path string) (string, error) {
	var abs string
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Clean(filepath.Join(w.root, path))
	}
	if !w.contains(abs) {
		return "", &OutsideWorkspaceError{Path: path}
	}

	// Canonicalize the deepest existing ancestor so symlinks cannot alias a
	// location outside the root, then re-verify containment.
	canon, err := canonicalize(abs)
	if err != nil {
		return "", &IOError{Op: "resolve", Path: path, Cause: err}
	}
	if !w.contains(canon) {
		return "", &OutsideWorkspaceError{Path: path}
	}
	return canon, nil
}

// Rel converts a resolved absolute path back to its workspace-relative form,
// using forward slashes. The root itself maps to "".
func (w *Workspace) Rel(abs string) string {
	rel, err := filepath.Rel(w.root, abs)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// IsRoot reports whether a resolved path is the workspace root itself.
func (w *Workspace) IsRoot(abs string) bool { return abs == w.root }

func (w *Workspace) contains(abs string) bool {
	return abs == w.root || strings.HasPrefix(abs, w.root+string(filepath.Separator))
}

// canonicalize resolves symlinks in the longest existing prefix of abs and
// rejoins the non-existing remainder lexically.
func canonicalize(abs string) (string, error) {
	existing := abs
	var tail []string
	for {
		if _, err := os.Lstat(existing); err == nil {
			break
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		tail = append([]string{filepath.Base(existing)}, tail...)
		existing = parent
	}
	resolved, err := filepath.EvalSymlinks(existing)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{resolved}, tail...)...), nil
}

// Exists reports whether a resolved path exists.
func (w *Workspace) Exists(abs string) bool {
	_, err := os.Stat(abs)
	return err == nil
}

// IsDir reports whether a resolved path is an existing directory.
func (w *Workspace) IsDir(abs string) bool {
	info, err := os.Stat(abs)
	return err == nil && info.IsDir()
}

// IsFile reports whether a resolved path is an existing regular file.
func (w *Workspace) IsFile(abs string) bool {
	info, err := os.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

// Stat returns file info for a resolved path.
func (w *Workspace) Stat(abs string) (os.FileInfo, error) {
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: w.Rel(abs), Kind: "path"}
		}
		return nil, &IOError{Op: "stat", Path: w.Rel(abs), Cause: err}
	}
	return info, nil
}

// List returns the immediate children of a resolved directory.
func (w *Workspace) List(abs string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, &IOError{Op: "list", Path: w.Rel(abs), Cause: err}
	}
	return entries, nil
}

// ReadFile reads a resolved file as UTF-8 text.
func (w *Workspace) ReadFile(abs string) (string, error) {
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{Path: w.Rel(abs), Kind: "file"}
		}
		return "", &IOError{Op: "read", Path: w.Rel(abs), Cause: err}
	}
	if !utf8.Valid(data) {
		return "", &DecodeError{Path: w.Rel(abs)}
	}
	return string(data), nil
}

// WriteFile writes content to a resolved path, creating any missing parent
// directories and replacing existing content in full.
func (w *Workspace) WriteFile(abs, content string) error {
	if err := w.EnsureParent(abs); err != nil {
		return err
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return &IOError{Op: "write", Path: w.Rel(abs), Cause: err}
	}
	return nil
}

// AppendFile appends content to an existing resolved file.
func (w *Workspace) AppendFile(abs, content string) error {
	f, err := os.OpenFile(abs, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: w.Rel(abs), Kind: "file"}
		}
		return &IOError{Op: "append", Path: w.Rel(abs), Cause: err}
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		return &IOError{Op: "append", Path: w.Rel(abs), Cause: err}
	}
	return nil
}

// RemoveFile removes a single resolved file.
func (w *Workspace) RemoveFile(abs string) error {
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: w.Rel(abs), Kind: "file"}
		}
		return &IOError{Op: "delete", Path: w.Rel(abs), Cause: err}
	}
	return nil
}

// RemoveTree removes a resolved directory and everything beneath it. The
// workspace root itself is never removable, regardless of alias form.
func (w *Workspace) RemoveTree(abs string) error {
	if w.IsRoot(abs) {
		return &RootDeletionError{}
	}
	if err := os.RemoveAll(abs); err != nil {
		return &IOError{Op: "delete tree", Path: w.Rel(abs), Cause: err}
	}
	return nil
}

// Mkdir creates a resolved directory and any missing intermediate
// directories. Fails if the target already exists as a file or directory.
func (w *Workspace) Mkdir(abs string) error {
	if w.Exists(abs) {
		return &AlreadyExistsError{Path: w.Rel(abs)}
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: w.Rel(abs), Cause: err}
	}
	return nil
}

// EnsureParent creates any missing intermediate directories before a write.
func (w *Workspace) EnsureParent(abs string) error {
	parent := filepath.Dir(abs)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: w.Rel(parent), Cause: err}
	}
	return nil
}
