package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// runLockPath returns the lock file guarding organize runs against mainFolder.
// It lives in the user cache directory so nothing but move/ is ever written
// under the main folder.
func runLockPath(mainFolder string) (string, error) {
	abs, err := filepath.Abs(mainFolder)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", mainFolder, err)
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, "file-organizer", "locks", hex.EncodeToString(sum[:8])+".lock"), nil
}

// acquireRunLock takes the run lock without waiting.
func acquireRunLock(mainFolder string) (*flock.Flock, error) {
	path, err := runLockPath(mainFolder)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", mainFolder, err)
	}
	if !ok {
		return nil, fmt.Errorf("another organize run is already using %s", mainFolder)
	}
	return lock, nil
}
