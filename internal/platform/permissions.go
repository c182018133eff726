package platform

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
)

// DefaultFileMode is used for files that do not exist yet.
const DefaultFileMode os.FileMode = 0644

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// ModeOf returns the permission bits of an existing file, or DefaultFileMode
// when the file does not exist.
func ModeOf(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultFileMode, nil
	}
	if err != nil {
		return 0, err
	}
	return info.Mode().Perm(), nil
}
