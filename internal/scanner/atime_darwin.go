//go:build darwin

package scanner

import (
	"os"
	"syscall"
	"time"
)

// fileAccessTime extracts the last-access time from the stat structure.
func fileAccessTime(info os.FileInfo) time.Time {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(stat.Atimespec.Sec, stat.Atimespec.Nsec)
	}
	return info.ModTime()
}
