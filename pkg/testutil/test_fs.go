package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/wieldy/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() filesystem.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFiles creates every file in files, keyed by path, with its parent
// directories.
func WriteFiles(t testing.TB, fs filesystem.FS, files map[string]string) {
	t.Helper()
	for path, content := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
	}
}

// ReadFile returns the content of path, failing the test if it is missing.
func ReadFile(t testing.TB, fs filesystem.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err, "reading %s", path)
	return string(data)
}

// ListFiles returns every regular file under root, sorted.
func ListFiles(t testing.TB, fs filesystem.FS, root string) []string {
	t.Helper()
	var files []string
	err := fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	return files
}
