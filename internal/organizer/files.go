package organizer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// validateDir checks that path exists and is a directory. Any stat failure
// counts as "does not exist".
func validateDir(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil {
		return NotFoundError(path)
	}
	if !info.IsDir() {
		return NotDirError(path)
	}
	return nil
}

// readDirNames returns the names of the immediate entries of dir.
func readDirNames(fs afero.Fs, dir string) ([]string, error) {
	f, err := fs.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Readdirnames(-1)
}

// lstat returns the entry's own metadata without following symlinks when the
// filesystem supports it.
func lstat(fs afero.Fs, name string) (os.FileInfo, error) {
	if l, ok := fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(name)
		return info, err
	}
	return fs.Stat(name)
}

// scanFiles collects regular files in dir whose extension is in allowed,
// keyed by file name. Unreadable entries and names that are not valid text
// are ignored.
func (s *Service) scanFiles(dir string, allowed []string) map[string]string {
	files := make(map[string]string)

	names, err := readDirNames(s.fs, dir)
	if err != nil {
		s.logger.Warn("scan directory", "dir", dir, "error", err)
		return files
	}

	for _, name := range names {
		if !utf8.ValidString(name) {
			continue
		}
		full := filepath.Join(dir, name)
		info, err := lstat(s.fs, full)
		if err != nil {
			s.logger.Debug("skip unreadable entry", "path", full, "error", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		ext, ok := fileExtension(name)
		if !ok || !extensionAllowed(ext, allowed) {
			continue
		}
		files[name] = full
	}

	return files
}

// fileExtension returns the lower-cased extension of name including the
// leading dot. Names without a dot, and dot-files such as ".env", have none.
func fileExtension(name string) (string, bool) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return "", false
	}
	return strings.ToLower(name[i:]), true
}

// extensionAllowed reports whether ext matches an entry of allowed,
// ignoring case.
func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}

// baseName strips everything from the last dot. Names without a dot are
// returned whole.
func baseName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i]
	}
	return name
}

// sameBase reports whether two file names share a base name. Comparison is
// case-sensitive.
func sameBase(a, b string) bool {
	return baseName(a) == baseName(b)
}

// copyFile streams src to dst, truncating dst and keeping the source's
// permission bits.
func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	mode := os.FileMode(0o644)
	if info, err := in.Stat(); err == nil {
		mode = info.Mode().Perm()
	}

	out, err := fs.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
