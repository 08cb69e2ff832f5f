package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for wieldy
	EnvConfigDir = "WIELDY_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for wieldy
	EnvStateDir = "WIELDY_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// DirName is the directory name for wieldy-specific files
	DirName = "wieldy"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// ProjectConfigFile is the name of the per-project configuration file
	ProjectConfigFile = ".wieldy.toml"

	// LogFileName is the name of the log file
	LogFileName = "wieldy.log"
)

// OutputPath maps inputFile, found under inputRoot, to the file it compiles
// to under outputRoot. The extension is replaced by outputExt. A file that
// is not under inputRoot keeps only its base name.
func OutputPath(inputRoot, outputRoot, inputFile, outputExt string) string {
	rel, err := filepath.Rel(inputRoot, inputFile)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(inputFile)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + outputExt
	return filepath.Join(outputRoot, rel)
}

// DirsForPath returns every directory containing filePath, root-most first.
// The filesystem root itself is not included.
func DirsForPath(filePath string) []string {
	var dirs []string
	dir := filepath.Dir(filepath.Clean(filePath))
	for dir != "." && dir != filepath.Dir(dir) {
		dirs = append(dirs, dir)
		dir = filepath.Dir(dir)
	}

	for i, j := 0, len(dirs)-1; i < j; i, j = i+1, j-1 {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

// ConfigDir returns the directory holding the user configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, DirName)
}

// UserConfigPath returns the path of the user configuration file
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory holding the log file.
// XDG_STATE_HOME is read on every call so that it can be changed at runtime.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, DirName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(xdg.StateHome, DirName)
	}
	return filepath.Join(homeDir, ".local", "state", DirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
