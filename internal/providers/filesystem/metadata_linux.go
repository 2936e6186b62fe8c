//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// createdTime extracts the inode change timestamp, the closest thing stat
// offers to a creation time on Linux.
func createdTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
	}
	return info.ModTime()
}
