package filesystem

import (
	"io/fs"
	"path/filepath"
)

// FS is the set of filesystem operations wieldy needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Walk visits root and everything below it in lexical order
	Walk(root string, fn filepath.WalkFunc) error
}
