package fsutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("exists", func(t *testing.T) {
		exists, err := DirExists(tmpDir)
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("not_exists", func(t *testing.T) {
		exists, err := DirExists(filepath.Join(tmpDir, "non_existent"))
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("is_file", func(t *testing.T) {
		filePath := filepath.Join(tmpDir, "file.txt")
		err := os.WriteFile(filePath, []byte("test"), 0644)
		assert.NoError(t, err)

		exists, err := DirExists(filePath)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("stat_error", func(t *testing.T) {
		_, err := DirExists("path\x00with-null")
		assert.Error(t, err)
	})
}

func TestExpandHome(t *testing.T) {
	origUserHomeDir := osUserHomeDir
	defer func() {
		osUserHomeDir = origUserHomeDir
	}()
	home := filepath.Join(string(filepath.Separator), "home", "tester")
	osUserHomeDir = func() (string, error) {
		return home, nil
	}

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", ExpandHome(""))
	})
	t.Run("no_tilde", func(t *testing.T) {
		assert.Equal(t, "/some/path", ExpandHome("/some/path"))
	})
	t.Run("tilde_in_name", func(t *testing.T) {
		assert.Equal(t, "~backup", ExpandHome("~backup"))
	})
	t.Run("only_tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandHome("~"))
	})
	t.Run("tilde_with_path", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, "abc"), ExpandHome("~/abc"))
	})
	t.Run("home_unknown", func(t *testing.T) {
		osUserHomeDir = func() (string, error) {
			return "", errors.New("no home")
		}
		assert.Equal(t, "~/abc", ExpandHome("~/abc"))
	})
}
