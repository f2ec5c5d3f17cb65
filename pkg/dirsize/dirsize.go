// Package dirsize sums the sizes of regular files under a directory
// without following symbolic links.
package dirsize

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/filetug/dutug/pkg/files"
)

type entryKind int

const (
	kindOther entryKind = iota
	kindDir
	kindRegular
)

// Aggregate returns the total size of all regular files reachable from dir.
// Symlinks and special files contribute nothing.
func Aggregate(dir *os.File) (uint64, error) {
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return 0, fmt.Errorf("failed to read directory %s: %w", dir.Name(), err)
	}
	var total uint64
	for _, entry := range entries {
		size, err := entrySize(dir, entry)
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// Scan returns a size entry for each immediate child of dir in listing order.
func Scan(dir *os.File) ([]files.SizeEntry, error) {
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir.Name(), err)
	}
	result := make([]files.SizeEntry, 0, len(entries))
	for _, entry := range entries {
		size, err := entrySize(dir, entry)
		if err != nil {
			return nil, err
		}
		result = append(result, files.NewSizeEntry(entry.Name(), size))
	}
	return result, nil
}

func entrySize(parent *os.File, entry fs.DirEntry) (uint64, error) {
	name := entry.Name()
	switch classify(entry) {
	case kindDir:
		return dirSize(parent, name)
	case kindRegular:
		return fileSize(parent, name)
	default:
		return 0, nil
	}
}

func dirSize(parent *os.File, name string) (size uint64, err error) {
	sub, err := openDirNoFollow(parent, name)
	if err != nil {
		return 0, fmt.Errorf("failed to open directory %s: %w", filepath.Join(parent.Name(), name), err)
	}
	defer func() {
		if closeErr := sub.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close directory %s: %w", sub.Name(), closeErr)
		}
	}()
	return Aggregate(sub)
}

func fileSize(parent *os.File, name string) (size uint64, err error) {
	f, err := openFileNoFollow(parent, name)
	if err != nil {
		return 0, fmt.Errorf("failed to open file %s: %w", filepath.Join(parent.Name(), name), err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %s: %w", f.Name(), closeErr)
		}
	}()
	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat file %s: %w", f.Name(), err)
	}
	// The entry may have been replaced between listing and opening.
	if !info.Mode().IsRegular() {
		return 0, nil
	}
	return uint64(info.Size()), nil
}

// classify relies on the type bits from the directory listing,
// which never describe the target of a symlink.
func classify(entry fs.DirEntry) entryKind {
	typ := entry.Type()
	switch {
	case typ&fs.ModeSymlink != 0:
		return kindOther
	case typ.IsDir():
		return kindDir
	case typ.IsRegular():
		return kindRegular
	default:
		return kindOther
	}
}
