package security

import "runtime"

// BlacklistVersion identifies the revision of the built-in protected path
// tables. Bump it whenever an entry is added.
const BlacklistVersion = 1

// Blacklist is an immutable set of filesystem paths that must never be
// offered for deletion. Entries may start with "~" and are home-expanded
// at comparison time. The built-in tables are security-critical,
// append-only data; tests may construct restricted tables of their own.
type Blacklist struct {
	version int
	entries []string
}

// NewBlacklist builds a blacklist from the given entries.
func NewBlacklist(entries []string) Blacklist {
	copied := make([]string, len(entries))
	copy(copied, entries)
	return Blacklist{version: BlacklistVersion, entries: copied}
}

// Version returns the table revision.
func (b Blacklist) Version() int {
	return b.version
}

// Entries returns a copy of the protected path entries.
func (b Blacklist) Entries() []string {
	copied := make([]string, len(b.entries))
	copy(copied, b.entries)
	return copied
}

// DefaultBlacklist returns the built-in protected path table for the
// current operating system.
func DefaultBlacklist() Blacklist {
	switch runtime.GOOS {
	case "darwin":
		return NewBlacklist(macOSBlacklist)
	default:
		return NewBlacklist(linuxBlacklist)
	}
}

// System directories that must NEVER be deleted.
var macOSBlacklist = []string{
	// Core system directories
	"/System",
	"/bin",
	"/sbin",
	"/usr/bin",
	"/usr/sbin",
	"/usr/lib",
	"/usr/libexec",
	"/usr/share",
	"/etc",
	"/dev",
	"/var",
	"/private/etc",
	"/private/var",

	// Apple frameworks and system apps
	"/Library/Apple",
	"/Library/Frameworks",
	"/Library/Extensions",
	"/System/Library",
	"/Applications/Utilities",

	// Critical user directories
	"/Users",
	"/Volumes",
	"/Network",
	"/cores",

	// Boot and recovery
	"/boot",
	"/.vol",
	"/Preboot",

	// Home directory critical paths
	"~/Library/Application Support",
	"~/Library/Preferences",
	"~/Library/Keychains",
	"~/Documents",
	"~/Desktop",
	"~/Pictures",
	"~/Music",
	"~/Movies",
}

var linuxBlacklist = []string{
	// Core system directories
	"/bin",
	"/sbin",
	"/usr/bin",
	"/usr/sbin",
	"/usr/lib",
	"/usr/lib64",
	"/usr/libexec",
	"/usr/share",
	"/lib",
	"/lib64",
	"/etc",
	"/dev",
	"/proc",
	"/sys",
	"/boot",
	"/root",

	// System administration
	"/var/lib",
	"/var/log/journal",

	// User directories
	"/home",
	"~/Documents",
	"~/Desktop",
	"~/Pictures",
	"~/Music",
	"~/Videos",
	"~/Downloads",
}
