//go:build !linux

package filesystem

import (
	"os"
	"time"
)

// createdTime falls back to the modification time on platforms where stat
// exposes no creation timestamp.
func createdTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
