package files

import "path/filepath"

// SizeEntry is an immediate child of a scanned directory with its total size.
type SizeEntry struct {
	Name string
	Size uint64
}

// NewSizeEntry creates an entry for a base name.
func NewSizeEntry(name string, size uint64) SizeEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("size entry name can not have path: " + name)
	}
	return SizeEntry{Name: name, Size: size}
}
