package platform

import (
	"os"
	"runtime"
)

// SetPerm applies perm to path, ignoring the process umask. Windows has no
// Unix permission bits, so it is a no-op there.
func SetPerm(path string, perm os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, perm.Perm())
}
