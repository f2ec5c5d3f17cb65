//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || windows)

package terminal

func columns(uintptr) (uint, error) {
	return 0, errUnsupported
}
