//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package dirsize

import (
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

func openDirNoFollow(parent *os.File, name string) (*os.File, error) {
	return openAt(parent, name, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_NOFOLLOW|unix.O_CLOEXEC)
}

// openFileNoFollow opens with O_NONBLOCK so that an entry swapped for a fifo
// after listing does not block the scan.
func openFileNoFollow(parent *os.File, name string) (*os.File, error) {
	return openAt(parent, name, unix.O_RDONLY|unix.O_NOFOLLOW|unix.O_CLOEXEC|unix.O_NONBLOCK)
}

func openAt(parent *os.File, name string, flags int) (*os.File, error) {
	dirfd := int(parent.Fd())
	path := filepath.Join(parent.Name(), name)
	for {
		fd, err := unix.Openat(dirfd, name, flags, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return nil, &fs.PathError{Op: "openat", Path: path, Err: err}
		}
		return os.NewFile(uintptr(fd), path), nil
	}
}
