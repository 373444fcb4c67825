package platform

import "path/filepath"

// getMacOSInfo returns the category capability table for macOS
func getMacOSInfo(homeDir, username string) *Info {
	return &Info{
		OS:       MacOS,
		HomeDir:  homeDir,
		Username: username,
		CategoryRoots: map[Category][]string{
			CategorySystemCache: {
				"/Library/Caches",
				"/System/Library/Caches",
			},
			CategoryUserCache: {
				filepath.Join(homeDir, "Library/Caches"),
			},
			CategoryLogs: {
				"/Library/Logs",
				"/private/var/log",
				filepath.Join(homeDir, "Library/Logs"),
			},
			CategoryTrash: {
				filepath.Join(homeDir, ".Trash"),
			},
			CategoryDownloads: {
				filepath.Join(homeDir, "Downloads"),
			},
			CategoryDevCache: {
				filepath.Join(homeDir, ".npm"),
				filepath.Join(homeDir, ".yarn"),
				filepath.Join(homeDir, ".cargo/registry"),
				filepath.Join(homeDir, ".gradle/caches"),
				filepath.Join(homeDir, "Library/Developer/Xcode/DerivedData"),
				filepath.Join(homeDir, "Library/Developer/CoreSimulator/Caches"),
			},
			CategoryBrowserData: {
				filepath.Join(homeDir, "Library/Caches/Google/Chrome"),
				filepath.Join(homeDir, "Library/Caches/Firefox"),
				filepath.Join(homeDir, "Library/Safari"),
			},
			CategoryAppSupport: {
				filepath.Join(homeDir, "Library/Application Support"),
			},
		},
		FallbackDirs: []string{
			filepath.Join(homeDir, "Downloads"),
			filepath.Join(homeDir, "Documents"),
			filepath.Join(homeDir, "Desktop"),
			filepath.Join(homeDir, "Library"),
		},
	}
}
