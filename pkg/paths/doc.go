// Package paths provides path handling for wieldy.
//
// It covers two things: mapping source files to the HTML files they compile
// to, and locating wieldy's own files (user configuration and the log file)
// following the XDG Base Directory specification.
//
// # Output mapping
//
// OutputPath relocates a source file from its input root to an output root,
// keeping the relative directory structure and swapping the extension:
//
//	paths.OutputPath("/p/src", "/p/dest", "/p/src/blog/post.wml", ".html")
//	// /p/dest/blog/post.html
//
// DirsForPath lists the directories that must exist before a file can be
// written, root-most first.
//
// # Environment Variables
//
//   - WIELDY_CONFIG_DIR: Override the config directory (default: $XDG_CONFIG_HOME/wieldy)
//   - WIELDY_STATE_DIR: Override the state directory (default: $XDG_STATE_HOME/wieldy)
package paths
