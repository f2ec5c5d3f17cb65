package bars

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/filetug/dutug/pkg/files"
	"github.com/filetug/dutug/pkg/fsutils"
)

type RendererOption func(*Renderer)

func WithStyler(styler Styler) RendererOption {
	return func(r *Renderer) {
		r.styler = styler
	}
}

// Renderer writes rows to a buffered writer.
type Renderer struct {
	w       *bufio.Writer
	columns uint
	styler  Styler
	sb      strings.Builder
}

func NewRenderer(w io.Writer, columns uint, options ...RendererOption) *Renderer {
	r := &Renderer{
		w:       bufio.NewWriter(w),
		columns: columns,
		styler:  PlainStyler{},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Render writes one row per entry and flushes once at the end.
// Rows written before an error are still flushed.
func (r *Renderer) Render(entries []files.SizeEntry) (err error) {
	defer func() {
		if flushErr := r.w.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", flushErr)
		}
	}()
	for _, entry := range entries {
		sizeText, err := fsutils.FormatSize(entry.Size)
		if err != nil {
			return fmt.Errorf("failed to format size of %s: %w", entry.Name, err)
		}
		if err = r.writeEntry(entry, sizeText); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeEntry(entry files.SizeEntry, sizeText string) error {
	r.sb.Reset()
	name := normalizeName(entry.Name)
	writeRow(&r.sb, r.columns, name, sizeText, r.styler.StyleSize(sizeText, entry.Size))
	r.sb.WriteByte('\n')
	if _, err := r.w.WriteString(r.sb.String()); err != nil {
		return fmt.Errorf("failed to write row for %s: %w", entry.Name, err)
	}
	return nil
}
