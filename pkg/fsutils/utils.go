// Package fsutils holds small filesystem helpers and the byte size formatter.
package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osStat = os.Stat
var osUserHomeDir = os.UserHomeDir

// DirExists reports whether path exists and is a directory.
// A missing path is not an error.
func DirExists(path string) (bool, error) {
	info, err := osStat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
// The path is returned unchanged when the home directory is unknown.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		return p
	}
	home, err := osUserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
