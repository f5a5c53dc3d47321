package impl

import "sync"

// DirectoryLock serializes every read-modify-write cycle against the
// directory snapshot. The directory and metrics services mutate the same
// record, so they must share one lock instance.
type DirectoryLock struct {
	sync.Mutex
}

// NewDirectoryLock is the constructor for DirectoryLock.
func NewDirectoryLock() *DirectoryLock {
	return &DirectoryLock{}
}
