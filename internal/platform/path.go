package platform

import (
	"path/filepath"
	"strings"
)

// ResolvePath turns an application's config path into a filesystem path.
//
// Paths starting with "/" or a drive letter ("C:") are already absolute and
// are only cleaned. A leading "~" stands for home. Anything else is joined
// onto home. The result is not checked for existence.
func ResolvePath(home, configPath string) string {
	if IsRooted(configPath) {
		return filepath.Clean(configPath)
	}

	if configPath == "~" {
		return filepath.Clean(home)
	}
	if strings.HasPrefix(configPath, "~/") || strings.HasPrefix(configPath, `~\`) {
		return filepath.Join(home, configPath[2:])
	}

	return filepath.Join(home, configPath)
}

// IsRooted reports whether p carries a path-root marker: a leading slash,
// a drive-letter colon, or whatever the host OS considers absolute.
func IsRooted(p string) bool {
	if strings.HasPrefix(p, "/") {
		return true
	}
	if len(p) > 1 && p[1] == ':' {
		return true
	}
	return filepath.IsAbs(p)
}
