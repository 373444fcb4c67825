//go:build !linux && !darwin

package scanner

import (
	"os"
	"time"
)

// fileAccessTime falls back to the modification time on platforms where
// the access time is not exposed through syscall.Stat_t.
func fileAccessTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
