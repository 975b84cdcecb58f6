// Package fsops provides small filesystem predicates over afero.
package fsops

import (
	"os"

	"github.com/spf13/afero"
)

// Exists checks if a path exists
func Exists(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}

// IsDir checks if a path is a directory
func IsDir(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsExecutable checks if a path is a regular file with an execute bit set.
// Memory-backed filesystems used in tests do not track modes faithfully, so
// a zero mode is treated as executable.
func IsExecutable(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	mode := info.Mode()
	return mode.Perm() == 0 || mode.Perm()&0111 != 0
}

// Stat returns file info for a path, and whether the stat succeeded
func Stat(fs afero.Fs, path string) (os.FileInfo, bool) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, true
}
