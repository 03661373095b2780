// Package io implements the creation of directory paths.
//
// A [pathing.ResolvedPath] is walked from the root downwards, with every
// missing directory created along the way. Existing directories are left
// untouched, while an existing non-directory entry on the path terminates the
// walk. Directories created before a failure are not removed again.
package io

import (
	"github.com/desertwitch/mkpath/internal/filesystem"
)

// DefaultDirMode is the permission mode for newly created directories, before
// the umask of the process is applied.
const DefaultDirMode uint32 = 0o755

type fsProvider interface {
	EntryKind(path string) (filesystem.EntryKind, error)
	IsWritable(path string) bool
}

type unixProvider interface {
	Mkdir(path string, mode uint32) error
}

// Report holds the directories that a call to [Handler.EnsurePath] has
// processed, in the order they were processed.
type Report struct {
	// DirsWalked are all directories that were established on the path,
	// regardless of whether they existed before or were created.
	DirsWalked []string

	// DirsCreated are the directories that were created.
	DirsCreated []string
}

// Handler is the principal implementation for the IO services.
type Handler struct {
	fsHandler   fsProvider
	unixHandler unixProvider
	dirMode     uint32
}

// NewHandler returns a pointer to a new IO [Handler]. Directories are created
// with dirMode, a zero dirMode results in [DefaultDirMode].
func NewHandler(fsHandler fsProvider, unixHandler unixProvider, dirMode uint32) *Handler {
	if dirMode == 0 {
		dirMode = DefaultDirMode
	}

	return &Handler{
		fsHandler:   fsHandler,
		unixHandler: unixHandler,
		dirMode:     dirMode,
	}
}
