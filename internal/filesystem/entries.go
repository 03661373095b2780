package filesystem

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sys/unix"
)

// EntryKind is the kind of entry found at a path position.
type EntryKind int

const (
	// EntryMissing means nothing exists at the path position.
	EntryMissing EntryKind = iota

	// EntryDirectory means a directory (or a symbolic link resolving to a
	// directory) exists at the path position.
	EntryDirectory

	// EntryOther means a non-directory entry exists at the path position.
	EntryOther
)

func (k EntryKind) String() string {
	switch k {
	case EntryMissing:
		return "missing"
	case EntryDirectory:
		return "directory"
	case EntryOther:
		return "other"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

// EntryKind classifies the entry at path. Symbolic links are followed, so a
// link to a directory is reported as [EntryDirectory] and a dangling link as
// [EntryMissing].
func (f *Handler) EntryKind(path string) (EntryKind, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Stat(path, &stat); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return EntryMissing, nil
		}

		return EntryMissing, fmt.Errorf("(fs-kind) %w: %s: %w", ErrInspectFailed, path, err)
	}

	if (stat.Mode & unix.S_IFMT) == unix.S_IFDIR {
		return EntryDirectory, nil
	}

	return EntryOther, nil
}

// IsWritable reports whether the invoking user may write to path.
func (f *Handler) IsWritable(path string) bool {
	return f.unixHandler.Access(path, unix.W_OK) == nil
}
