//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

var ioctlGetWinsize = unix.IoctlGetWinsize

func columns(fd uintptr) (uint, error) {
	ws, err := ioctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return uint(ws.Col), nil
}
