package platform

import "path/filepath"

// getLinuxInfo returns the category capability table for Linux
func getLinuxInfo(homeDir, username string) *Info {
	return &Info{
		OS:       Linux,
		HomeDir:  homeDir,
		Username: username,
		CategoryRoots: map[Category][]string{
			CategorySystemCache: {
				"/var/cache",
			},
			CategoryUserCache: {
				filepath.Join(homeDir, ".cache"),
			},
			CategoryLogs: {
				"/var/log",
			},
			CategoryTrash: {
				filepath.Join(homeDir, ".local/share/Trash"),
			},
			CategoryDownloads: {
				filepath.Join(homeDir, "Downloads"),
			},
			CategoryDevCache: {
				filepath.Join(homeDir, ".npm"),
				filepath.Join(homeDir, ".yarn"),
				filepath.Join(homeDir, ".cargo/registry"),
				filepath.Join(homeDir, ".gradle/caches"),
				filepath.Join(homeDir, ".cache/pip"),
			},
			CategoryBrowserData: {
				filepath.Join(homeDir, ".cache/google-chrome"),
				filepath.Join(homeDir, ".mozilla/firefox"),
				filepath.Join(homeDir, ".cache/chromium"),
			},
			// No conventional application-support location on Linux.
			CategoryAppSupport: {},
		},
		FallbackDirs: []string{
			filepath.Join(homeDir, "Downloads"),
			filepath.Join(homeDir, "Documents"),
			filepath.Join(homeDir, "Desktop"),
			filepath.Join(homeDir, ".local/share"),
		},
	}
}
