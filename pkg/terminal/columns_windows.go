//go:build windows

package terminal

import "golang.org/x/sys/windows"

var getConsoleScreenBufferInfo = windows.GetConsoleScreenBufferInfo

func columns(fd uintptr) (uint, error) {
	var info windows.ConsoleScreenBufferInfo
	if err := getConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, err
	}
	width := int(info.Window.Right) - int(info.Window.Left) + 1
	if width < 0 {
		return 0, nil
	}
	return uint(width), nil
}
