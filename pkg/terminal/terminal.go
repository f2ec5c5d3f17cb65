// Package terminal reports the width of the terminal attached to a file.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Provider returns the column count of a terminal.
type Provider interface {
	Columns() (uint, error)
}

// TermSizeError is returned when the terminal size can not be obtained.
type TermSizeError struct {
	Name string
	Err  error
}

func (e *TermSizeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to get terminal size of %s", e.Name)
	}
	return fmt.Sprintf("failed to get terminal size of %s: %v", e.Name, e.Err)
}

func (e *TermSizeError) Unwrap() error {
	return e.Err
}

var isTerminal = term.IsTerminal

// NewProvider returns the platform provider for f.
func NewProvider(f *os.File) Provider {
	return fileProvider{f: f}
}

type fileProvider struct {
	f *os.File
}

func (p fileProvider) Columns() (uint, error) {
	fd := p.f.Fd()
	if !isTerminal(int(fd)) {
		return 0, &TermSizeError{Name: p.f.Name(), Err: errNotTerminal}
	}
	cols, err := columns(fd)
	if err != nil {
		return 0, &TermSizeError{Name: p.f.Name(), Err: err}
	}
	if cols == 0 {
		return 0, &TermSizeError{Name: p.f.Name(), Err: errZeroColumns}
	}
	return cols, nil
}

// Static is a Provider with a fixed column count.
type Static uint

func (s Static) Columns() (uint, error) {
	return uint(s), nil
}
