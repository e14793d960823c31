package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hirochachacha/go-smb2"
)

// SMBFS reads from a mounted SMB share. Paths are relative to the share root.
type SMBFS struct {
	Share *smb2.Share
}

func (s *SMBFS) Open(name string) (fs.File, error) {
	f, err := s.Share.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *SMBFS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return s.walk(normalize(root), fn)
}

func (s *SMBFS) walk(path string, fn fs.WalkDirFunc) error {
	infos, err := s.Share.ReadDir(path)
	if err != nil {
		return fn(path, nil, err)
	}

	for _, info := range infos {
		name := info.Name()
		if name == "." || name == ".." {
			continue
		}

		fullPath := normalize(filepath.Join(path, name))
		d := fs.FileInfoToDirEntry(info)

		if err := fn(fullPath, d, nil); err != nil {
			if err == fs.SkipDir {
				if info.IsDir() {
					continue
				}
				return nil
			}
			return err
		}

		if info.IsDir() {
			// Do not follow symlinks/reparse points (Junctions)
			if info.Mode()&os.ModeSymlink != 0 {
				continue
			}
			if err := s.walk(fullPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func normalize(path string) string {
	if path == "" {
		return "."
	}
	return strings.ReplaceAll(path, "\\", "/")
}
