//go:build !unix

package persistence

import "os"

// noopLocker is used where flock(2) is unavailable. Saves from this process
// are still serialized by Writer.
type noopLocker struct{}

func (noopLocker) Lock(*os.File) error   { return nil }
func (noopLocker) RLock(*os.File) error  { return nil }
func (noopLocker) Unlock(*os.File) error { return nil }

func newPlatformLocker() fileLocker {
	return noopLocker{}
}
