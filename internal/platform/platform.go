package platform

import (
	"os/user"
	"runtime"
)

// Platform represents the operating system platform
type Platform string

const (
	MacOS   Platform = "darwin"
	Linux   Platform = "linux"
	Unknown Platform = "unknown"
)

// Category identifies a class of reclaimable data
type Category string

const (
	CategorySystemCache Category = "system-cache"
	CategoryUserCache   Category = "user-cache"
	CategoryLogs        Category = "logs"
	CategoryTrash       Category = "trash"
	CategoryDownloads   Category = "downloads"
	CategoryDevCache    Category = "developer-cache"
	CategoryBrowserData Category = "browser-data"
	CategoryAppSupport  Category = "application-support"
)

// AllCategories returns every cleanup category in display order.
func AllCategories() []Category {
	return []Category{
		CategorySystemCache,
		CategoryUserCache,
		CategoryLogs,
		CategoryTrash,
		CategoryDownloads,
		CategoryDevCache,
		CategoryBrowserData,
		CategoryAppSupport,
	}
}

// Name returns a human-readable label for the category.
func (c Category) Name() string {
	switch c {
	case CategorySystemCache:
		return "System Caches"
	case CategoryUserCache:
		return "User Caches"
	case CategoryLogs:
		return "Log Files"
	case CategoryTrash:
		return "Trash"
	case CategoryDownloads:
		return "Downloads"
	case CategoryDevCache:
		return "Developer Caches"
	case CategoryBrowserData:
		return "Browser Data"
	case CategoryAppSupport:
		return "Application Support"
	default:
		return string(c)
	}
}

// Info contains platform-specific paths. CategoryRoots maps each cleanup
// category to the directories that may hold that kind of data; roots that
// don't exist on a given machine are simply skipped by the scanners.
type Info struct {
	OS            Platform
	HomeDir       string
	Username      string
	CategoryRoots map[Category][]string
	// FallbackDirs are broad user directories scanned when every category
	// root comes back empty, so the tool is never silently empty.
	FallbackDirs []string
}

// Detect returns the current platform
func Detect() Platform {
	switch runtime.GOOS {
	case "darwin":
		return MacOS
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// GetInfo returns platform-specific information for the current OS
func GetInfo() (*Info, error) {
	currentUser, err := user.Current()
	if err != nil {
		return nil, err
	}

	homeDir := currentUser.HomeDir
	username := currentUser.Username

	switch Detect() {
	case MacOS:
		return getMacOSInfo(homeDir, username), nil
	case Linux:
		return getLinuxInfo(homeDir, username), nil
	default:
		return nil, ErrUnsupportedPlatform
	}
}

// Errors
var (
	ErrUnsupportedPlatform = &PlatformError{"unsupported platform"}
)

// PlatformError represents a platform-related error
type PlatformError struct {
	Message string
}

func (e *PlatformError) Error() string {
	return e.Message
}
