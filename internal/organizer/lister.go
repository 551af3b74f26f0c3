package organizer

import (
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// ListFolders lists subfolders of path on the OS filesystem.
func ListFolders(path string) ([]string, error) {
	return New(nil, nil).ListFolder(path)
}

// ListFolder returns the names of the immediate subdirectories of path,
// sorted by byte order. Symlinks are followed to decide whether an entry is a
// directory. Entries that cannot be stat'ed are left out.
func (s *Service) ListFolder(path string) ([]string, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return nil, NotFoundError(path)
	}
	if !info.IsDir() {
		return nil, NotDirError(path)
	}

	folders := []string{}

	names, err := readDirNames(s.fs, path)
	if err != nil {
		s.logger.Warn("list directory", "path", path, "error", err)
		return folders, nil
	}

	for _, name := range names {
		if !utf8.ValidString(name) {
			continue
		}
		entry, err := s.fs.Stat(filepath.Join(path, name))
		if err != nil {
			// Broken symlinks and permission problems land here.
			s.logger.Debug("skip unreadable entry", "path", filepath.Join(path, name), "error", err)
			continue
		}
		if entry.IsDir() {
			folders = append(folders, name)
		}
	}

	sort.Strings(folders)
	return folders, nil
}
