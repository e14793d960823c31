package source

import (
	"io/fs"
	"strings"
)

// SkipDirs are directory names the walker never descends into.
var SkipDirs = []string{
	".git",
	".svn",
	".idea",
	".vscode",
	"node_modules",
	"vendor",
	"__pycache__",
	"venv",
	"$Recycle.Bin",
	"System Volume Information",
}

// Walk calls fn for every regular file under root for which keep returns true.
// Unreadable entries are passed to onErr (if set) and skipped.
func Walk(fsys FileSystem, root string, keep func(path string) bool, fn func(path string) error, onErr func(path string, err error)) error {
	return OrLocal(fsys).WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if onErr != nil {
				onErr(path, err)
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipped(d.Name()) {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if keep != nil && !keep(path) {
			return nil
		}
		return fn(path)
	})
}

func skipped(name string) bool {
	for _, s := range SkipDirs {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}
