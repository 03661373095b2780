package io

import "errors"

var (
	// ErrBlockedByFile occurs when a position on the path that needs to be a
	// directory is occupied by a non-directory entry (such as a regular file).
	ErrBlockedByFile = errors.New("path is blocked by a non-directory")

	// ErrPermissionDenied occurs when a directory cannot be created due to
	// missing permissions on its parent directory.
	ErrPermissionDenied = errors.New("permission denied creating directory")

	// ErrCreationFailed occurs when a directory cannot be created, or its path
	// position cannot be inspected, for any other reason.
	ErrCreationFailed = errors.New("failed to create directory")

	// ErrNotWritable occurs when the target directory is established, but it
	// is not writable by the invoking user.
	ErrNotWritable = errors.New("directory is not writable")
)
