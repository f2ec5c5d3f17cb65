// Package dutug lists the entries of a directory sorted by their total size.
package dutug

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"

	"github.com/filetug/dutug/pkg/bars"
	"github.com/filetug/dutug/pkg/dirsize"
	"github.com/filetug/dutug/pkg/files"
	"github.com/filetug/dutug/pkg/fsutils"
	"github.com/filetug/dutug/pkg/terminal"
)

var (
	ErrTerminalTooNarrow = errors.New("terminal is too narrow")
	ErrNoANSISupport     = errors.New("output does not support ANSI escape codes")
	ErrNotDirectory      = errors.New("not a directory")
)

var osOpen = os.Open
var dirExists = fsutils.DirExists

type Option func(*runner)

// WithOutput sets where rows are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *runner) {
		r.out = w
	}
}

// WithTerminal sets the source of the terminal width.
// Defaults to the terminal attached to os.Stdout.
func WithTerminal(p terminal.Provider) Option {
	return func(r *runner) {
		r.terminal = p
	}
}

// WithColorProfile overrides the colour profile detected for the output.
func WithColorProfile(profile termenv.Profile) Option {
	return func(r *runner) {
		r.profile = &profile
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *runner) {
		r.logger = logger
	}
}

type runner struct {
	out      io.Writer
	terminal terminal.Provider
	profile  *termenv.Profile
	logger   logrus.FieldLogger
}

// Run prints the entries of dirPath, smallest first.
// An empty dirPath means the working directory.
func Run(dirPath string, options ...Option) error {
	r := runner{
		out:    os.Stdout,
		logger: logrus.StandardLogger(),
	}
	for _, option := range options {
		option(&r)
	}
	if r.terminal == nil {
		r.terminal = terminal.NewProvider(os.Stdout)
	}
	return r.run(dirPath)
}

func (r runner) run(dirPath string) error {
	columns, err := r.terminal.Columns()
	if err != nil {
		return err
	}
	if columns < bars.MinColumns {
		return fmt.Errorf("%w: %d columns, at least %d required", ErrTerminalTooNarrow, columns, bars.MinColumns)
	}

	renderer := lipgloss.NewRenderer(r.out)
	if r.profile != nil {
		renderer.SetColorProfile(*r.profile)
	}
	if renderer.ColorProfile() == termenv.Ascii {
		return ErrNoANSISupport
	}

	dirPath = resolveDir(dirPath)
	entries, err := r.scan(dirPath)
	if err != nil {
		return err
	}
	files.SortBySize(entries)

	rows := bars.NewRenderer(r.out, columns, bars.WithStyler(bars.NewColorStyler(renderer)))
	return rows.Render(entries)
}

func (r runner) scan(dirPath string) (entries []files.SizeEntry, err error) {
	isDir, err := dirExists(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dirPath, err)
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dirPath)
	}

	dir, err := osOpen(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", dirPath, err)
	}
	defer func() {
		if closeErr := dir.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close directory %s: %w", dirPath, closeErr)
		}
	}()

	if entries, err = dirsize.Scan(dir); err != nil {
		return nil, err
	}

	var total uint64
	for _, entry := range entries {
		total += entry.Size
		r.logger.WithFields(logrus.Fields{
			"entry": entry.Name,
			"size":  humanize.Bytes(entry.Size),
		}).Debug("entry scanned")
	}
	r.logger.WithFields(logrus.Fields{
		"dir":     dirPath,
		"entries": len(entries),
		"total":   humanize.Bytes(total),
	}).Debug("directory scanned")
	return entries, nil
}

func resolveDir(dirPath string) string {
	if dirPath == "" {
		return "."
	}
	return fsutils.ExpandHome(dirPath)
}
