package dirsize

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/stretchr/testify/require"

	"github.com/filetug/dutug/pkg/files"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func openDir(t *testing.T, path string) *os.File {
	t.Helper()
	dir, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = dir.Close()
	})
	return dir
}

func symlinkOrSkip(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks are not available: %v", err)
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		root := t.TempDir()
		total, err := Aggregate(openDir(t, root))
		assert.NoError(t, err)
		assert.Equal(t, uint64(0), total)
	})

	t.Run("flat", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a"), 500)
		writeFile(t, filepath.Join(root, "b"), 20)
		writeFile(t, filepath.Join(root, "c"), 0)
		total, err := Aggregate(openDir(t, root))
		assert.NoError(t, err)
		assert.Equal(t, uint64(520), total)
	})

	t.Run("nested", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "top"), 1)
		writeFile(t, filepath.Join(root, "d1", "f"), 10)
		writeFile(t, filepath.Join(root, "d1", "d2", "f"), 100)
		writeFile(t, filepath.Join(root, "d1", "d2", "d3", "f"), 1000)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "empty", "deeper"), 0o755))
		total, err := Aggregate(openDir(t, root))
		assert.NoError(t, err)
		assert.Equal(t, uint64(1111), total)
	})

	t.Run("symlinks_skipped", func(t *testing.T) {
		root := t.TempDir()
		outside := t.TempDir()
		writeFile(t, filepath.Join(outside, "big"), 4096)
		writeFile(t, filepath.Join(root, "real"), 7)
		symlinkOrSkip(t, outside, filepath.Join(root, "dir_link"))
		symlinkOrSkip(t, filepath.Join(outside, "big"), filepath.Join(root, "file_link"))
		total, err := Aggregate(openDir(t, root))
		assert.NoError(t, err)
		assert.Equal(t, uint64(7), total)
	})

	t.Run("symlink_loop", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "sub", "f"), 3)
		symlinkOrSkip(t, root, filepath.Join(root, "sub", "loop"))
		total, err := Aggregate(openDir(t, root))
		assert.NoError(t, err)
		assert.Equal(t, uint64(3), total)
	})

	t.Run("unreadable_subdir_fails", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permissions are not enforced through chmod on windows")
		}
		if os.Geteuid() == 0 {
			t.Skip("root ignores directory permissions")
		}
		root := t.TempDir()
		locked := filepath.Join(root, "locked")
		writeFile(t, filepath.Join(locked, "f"), 5)
		require.NoError(t, os.Chmod(locked, 0))
		t.Cleanup(func() {
			_ = os.Chmod(locked, 0o755)
		})
		_, err := Aggregate(openDir(t, root))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "locked")
	})
}

func TestScan(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a"), 500)
		writeFile(t, filepath.Join(root, "b", "inner"), 2000)
		writeFile(t, filepath.Join(root, "c"), 10)

		entries, err := Scan(openDir(t, root))
		assert.NoError(t, err)

		bySize := map[string]uint64{}
		for _, e := range entries {
			bySize[e.Name] = e.Size
		}
		assert.Equal(t, map[string]uint64{"a": 500, "b": 2000, "c": 10}, bySize)
	})

	t.Run("symlink_listed_with_zero_size", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "target"), 9)
		symlinkOrSkip(t, filepath.Join(root, "target"), filepath.Join(root, "link"))

		entries, err := Scan(openDir(t, root))
		assert.NoError(t, err)
		files.SortBySize(entries)
		assert.Equal(t, []files.SizeEntry{{Name: "link", Size: 0}, {Name: "target", Size: 9}}, entries)
	})

	t.Run("not_a_directory", func(t *testing.T) {
		root := t.TempDir()
		path := filepath.Join(root, "file")
		writeFile(t, path, 1)
		_, err := Scan(openDir(t, path))
		assert.Error(t, err)
	})
}
