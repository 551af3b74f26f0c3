// Package organizer sorts files from a source folder and a backup folder into
// extension-named folders under <main>/move, pairing backups with source files
// by base name. It also lists the subfolders of a directory so callers can
// offer source and backup choices.
//
// Failures come in two tiers. Invalid inputs and an unusable move folder abort
// the call with an *OpError and no result. Problems with a single file or
// extension folder are recorded in Result.SkippedFiles and the call succeeds.
package organizer

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// MoveDir is the name of the output folder created under the main folder.
const MoveDir = "move"

// Request holds the inputs of one organize run.
type Request struct {
	MainFolder       string   // Root folder
	SourceFolder     string   // Source subfolder, relative to MainFolder
	BackupFolder     string   // Backup subfolder, relative to MainFolder
	SourceExtensions []string // Dot-prefixed, matched ignoring case
	BackupExtensions []string // Dot-prefixed, matched ignoring case
	DryRun           bool     // Report what would happen without writing
}

// Result reports the outcome of one organize run. Paths are relative to the
// main folder and always use forward slashes.
type Result struct {
	MovedFiles     []string `json:"moved_files"`
	SkippedFiles   []string `json:"skipped_files"`
	CreatedFolders []string `json:"created_folders"`
}

func newResult() *Result {
	return &Result{
		MovedFiles:     []string{},
		SkippedFiles:   []string{},
		CreatedFolders: []string{},
	}
}

// Service runs folder listing and organize operations against a filesystem.
// It holds no state between calls.
type Service struct {
	fs     afero.Fs
	logger *slog.Logger
}

// New creates a Service. A nil fs means the OS filesystem and a nil logger
// means slog.Default().
func New(fs afero.Fs, logger *slog.Logger) *Service {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fs: fs, logger: logger}
}

// ProcessFiles organizes files on the OS filesystem. Parameters follow the
// order of Request.
func ProcessFiles(mainFolder, sourceFolder, backupFolder string, sourceExtensions, backupExtensions []string) (*Result, error) {
	return New(nil, nil).ProcessFiles(context.Background(), Request{
		MainFolder:       mainFolder,
		SourceFolder:     sourceFolder,
		BackupFolder:     backupFolder,
		SourceExtensions: sourceExtensions,
		BackupExtensions: backupExtensions,
	})
}

// ProcessFiles copies every whitelisted source file into move/<ext>/ together
// with all whitelisted backup files sharing its base name.
//
// Source and backup folders are validated before anything is written. The
// context is checked between source files; a single copy is never cut short.
func (s *Service) ProcessFiles(ctx context.Context, req Request) (*Result, error) {
	mainPath := req.MainFolder
	sourcePath := filepath.Join(mainPath, req.SourceFolder)
	backupPath := filepath.Join(mainPath, req.BackupFolder)

	if err := validateDir(s.fs, sourcePath); err != nil {
		return nil, err
	}
	if err := validateDir(s.fs, backupPath); err != nil {
		return nil, err
	}

	moveFolder := filepath.Join(mainPath, MoveDir)
	if !req.DryRun {
		if err := s.fs.MkdirAll(moveFolder, 0o755); err != nil {
			return nil, &OpError{Kind: ErrIO, Path: moveFolder, Err: err}
		}
	}

	sourceFiles := s.scanFiles(sourcePath, req.SourceExtensions)
	backupFiles := s.scanFiles(backupPath, req.BackupExtensions)
	backupNames := sortedKeys(backupFiles)

	s.logger.Debug("scanned folders",
		"source", sourcePath, "source_files", len(sourceFiles),
		"backup", backupPath, "backup_files", len(backupFiles))

	result := newResult()
	planned := make(map[string]bool)

	for _, name := range sortedKeys(sourceFiles) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("organize %s: %w", mainPath, err)
		}

		ext, ok := fileExtension(name)
		if !ok {
			continue
		}
		extFolder := filepath.Join(moveFolder, ext)
		relFolder := path.Join(MoveDir, ext)

		created, err := s.ensureDir(extFolder, req.DryRun, planned)
		if err != nil {
			s.skip(result, fmt.Sprintf("无法创建文件夹 %s: %v", ext, err))
			continue
		}
		if created {
			result.CreatedFolders = append(result.CreatedFolders, relFolder)
		}

		if s.copy(sourceFiles[name], filepath.Join(extFolder, name), req.DryRun) {
			result.MovedFiles = append(result.MovedFiles, path.Join(relFolder, name))
		} else {
			s.skip(result, fmt.Sprintf("无法复制文件: %s", name))
		}

		for _, backupName := range backupNames {
			if !sameBase(name, backupName) {
				continue
			}
			if s.copy(backupFiles[backupName], filepath.Join(extFolder, backupName), req.DryRun) {
				result.MovedFiles = append(result.MovedFiles, path.Join(relFolder, backupName))
			} else {
				s.skip(result, fmt.Sprintf("无法复制备用文件: %s", backupName))
			}
		}
	}

	s.logger.Info("organize finished",
		"main", mainPath,
		"moved", len(result.MovedFiles),
		"skipped", len(result.SkippedFiles),
		"created", len(result.CreatedFolders),
		"dry_run", req.DryRun)

	return result, nil
}

// ensureDir creates dir when it does not exist and reports whether this call
// created it. In dry-run mode nothing is created; planned remembers folders
// that would have been.
func (s *Service) ensureDir(dir string, dryRun bool, planned map[string]bool) (bool, error) {
	if _, err := s.fs.Stat(dir); err == nil {
		return false, nil
	}
	if dryRun {
		if planned[dir] {
			return false, nil
		}
		planned[dir] = true
		return true, nil
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return false, err
	}
	s.logger.Debug("created folder", "path", dir)
	return true, nil
}

func (s *Service) copy(src, dst string, dryRun bool) bool {
	if dryRun {
		return true
	}
	if err := copyFile(s.fs, src, dst); err != nil {
		s.logger.Debug("copy failed", "src", src, "dst", dst, "error", err)
		return false
	}
	s.logger.Debug("copied file", "src", src, "dst", dst)
	return true
}

func (s *Service) skip(result *Result, msg string) {
	s.logger.Warn("skipped", "reason", msg)
	result.SkippedFiles = append(result.SkippedFiles, msg)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
