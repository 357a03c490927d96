package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/casapps/cascolor/internal/config"
)

// InstanceLock marks the primary running picker. Several pickers may run at
// once; only the primary prunes old debug logs.
type InstanceLock struct {
	flock *flock.Flock
	path  string
}

var instanceLock *InstanceLock

// lockPath is where the primary instance lock lives
func lockPath() string {
	return filepath.Join(config.GetCascolorDir(), "cascolor.lock")
}

// AcquireLock tries to become the primary instance.
// Returns true if the lock was acquired, false if another picker holds it.
func AcquireLock() (bool, error) {
	if err := config.EnsureDirs(); err != nil {
		return false, fmt.Errorf("failed to ensure config dirs: %w", err)
	}

	fileLock := flock.New(lockPath())
	locked, err := fileLock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock: %w", err)
	}
	if !locked {
		return false, nil
	}

	instanceLock = &InstanceLock{flock: fileLock, path: lockPath()}
	return true, nil
}

// ReleaseLock releases the lock if it is held by this instance
func ReleaseLock() error {
	if instanceLock == nil || instanceLock.flock == nil {
		return nil
	}
	err := instanceLock.flock.Unlock()
	instanceLock = nil
	return err
}
