package terminal

import "errors"

var (
	errNotTerminal = errors.New("not a terminal")
	errZeroColumns = errors.New("terminal reports zero columns")
	errUnsupported = errors.New("terminal size is not supported on this platform")
)
