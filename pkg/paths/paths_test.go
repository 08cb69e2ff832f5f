package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name       string
		inputRoot  string
		outputRoot string
		inputFile  string
		outputExt  string
		expected   string
	}{
		{
			name:       "file at the root",
			inputRoot:  "/p/templates_src",
			outputRoot: "/p/templates_dest",
			inputFile:  "/p/templates_src/file1.wml",
			outputExt:  ".html",
			expected:   "/p/templates_dest/file1.html",
		},
		{
			name:       "nested directories are preserved",
			inputRoot:  "/p/src",
			outputRoot: "/out",
			inputFile:  "/p/src/blog/2024/post.wml",
			outputExt:  ".html",
			expected:   "/out/blog/2024/post.html",
		},
		{
			name:       "in place",
			inputRoot:  "/p/src",
			outputRoot: "/p/src",
			inputFile:  "/p/src/index.wml",
			outputExt:  ".html",
			expected:   "/p/src/index.html",
		},
		{
			name:       "file without extension",
			inputRoot:  "/p",
			outputRoot: "/q",
			inputFile:  "/p/README",
			outputExt:  ".html",
			expected:   "/q/README.html",
		},
		{
			name:       "only the last extension is replaced",
			inputRoot:  "/p",
			outputRoot: "/q",
			inputFile:  "/p/page.en.wml",
			outputExt:  ".htm",
			expected:   "/q/page.en.htm",
		},
		{
			name:       "file outside the input root",
			inputRoot:  "/p/src",
			outputRoot: "/out",
			inputFile:  "/elsewhere/page.wml",
			outputExt:  ".html",
			expected:   "/out/page.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OutputPath(tt.inputRoot, tt.outputRoot, tt.inputFile, tt.outputExt))
		})
	}
}

func TestDirsForPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name: "deep absolute path",
			path: "/Users/user/Projects/project/templates/file1.wml",
			expected: []string{
				"/Users",
				"/Users/user",
				"/Users/user/Projects",
				"/Users/user/Projects/project",
				"/Users/user/Projects/project/templates",
			},
		},
		{
			name:     "single directory",
			path:     "/.__WIELDYTESTDIR/user",
			expected: []string{"/.__WIELDYTESTDIR"},
		},
		{
			name:     "file at the root",
			path:     "/file.wml",
			expected: nil,
		},
		{
			name:     "relative path",
			path:     "site/blog/post.html",
			expected: []string{"site", "site/blog"},
		},
		{
			name:     "unclean path",
			path:     "/a//b/../c/file.html",
			expected: []string{"/a", "/a/c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DirsForPath(tt.path))
		})
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/custom/config")
		assert.Equal(t, "/custom/config", ConfigDir())
		assert.Equal(t, "/custom/config/config.toml", UserConfigPath())
	})

	t.Run("default ends with wieldy", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		assert.Equal(t, DirName, filepath.Base(ConfigDir()))
	})
}

func TestStateDir(t *testing.T) {
	tests := []struct {
		name     string
		envSetup map[string]string
		expected string
	}{
		{
			name:     "override wins",
			envSetup: map[string]string{EnvStateDir: "/custom/state", "XDG_STATE_HOME": "/xdg"},
			expected: "/custom/state",
		},
		{
			name:     "XDG_STATE_HOME",
			envSetup: map[string]string{EnvStateDir: "", "XDG_STATE_HOME": "/xdg"},
			expected: "/xdg/wieldy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.expected, StateDir())
			assert.Equal(t, filepath.Join(tt.expected, LogFileName), LogFilePath())
		})
	}

	t.Run("home fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv(EnvStateDir, "")
		t.Setenv("XDG_STATE_HOME", "")
		assert.Equal(t, filepath.Join(home, ".local", "state", DirName), StateDir())
	})
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty path", "", ""},
		{"just tilde", "~", homeDir},
		{"tilde with path", "~/documents", filepath.Join(homeDir, "documents")},
		{"other user", "~other/documents", "~other/documents"},
		{"absolute path", "/usr/local", "/usr/local"},
		{"relative path", "some/path", "some/path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.input))
		})
	}
}
