// Package filesystem provides the filesystem abstraction used by the build
// driver.
//
// NewOS works on the real filesystem; NewAferoFS wraps any afero.Fs, which is
// how tests run builds against an in-memory tree.
package filesystem
