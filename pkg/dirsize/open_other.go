//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package dirsize

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

var errSymlink = errors.New("entry became a symbolic link")

var osLstat = os.Lstat

func openDirNoFollow(parent *os.File, name string) (*os.File, error) {
	return openNoFollow(parent, name)
}

func openFileNoFollow(parent *os.File, name string) (*os.File, error) {
	return openNoFollow(parent, name)
}

// openNoFollow has no atomic equivalent of O_NOFOLLOW here, so it checks
// the entry with Lstat right before opening it by path.
func openNoFollow(parent *os.File, name string) (*os.File, error) {
	path := filepath.Join(parent.Name(), name)
	info, err := osLstat(path)
	if err != nil {
		return nil, err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errSymlink}
	}
	return os.Open(path)
}
