package store

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

var ErrDataDirLocked = errors.New("data dir is in use by another engine")

// LockDataDir takes an exclusive lock on dataDir/engine.lock. Release it
// with Unlock on shutdown.
func LockDataDir(dataDir string) (*flock.Flock, error) {
	fl := flock.New(filepath.Join(dataDir, "engine.lock"))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data dir: %w", err)
	}
	if !ok {
		return nil, ErrDataDirLocked
	}
	return fl, nil
}
