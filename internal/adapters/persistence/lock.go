package persistence

import (
	"errors"
	"os"
)

// ErrFileLocked is returned when another process holds the file lock.
var ErrFileLocked = errors.New("file is locked by another process")

// fileLocker abstracts the platform advisory lock.
type fileLocker interface {
	// Lock takes an exclusive lock without waiting.
	Lock(f *os.File) error
	// RLock takes a shared lock, waiting for any exclusive holder.
	RLock(f *os.File) error
	Unlock(f *os.File) error
}

var locker fileLocker = newPlatformLocker()
