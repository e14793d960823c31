package source

import (
	"io/fs"
	"os"
	"path/filepath"
)

// FileSystem is where extractors open their input from.
type FileSystem interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
	Open(name string) (fs.File, error)
}

// LocalFS wrapper
type LocalFS struct{}

func (l *LocalFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

func (l *LocalFS) Open(name string) (fs.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Local is the shared LocalFS used when no file system is given.
var Local FileSystem = &LocalFS{}

// OrLocal returns fsys, or Local when fsys is nil.
func OrLocal(fsys FileSystem) FileSystem {
	if fsys == nil {
		return Local
	}
	return fsys
}
