package validation

import "errors"

var (
	// ErrEmptySegment occurs when a path contains an empty segment.
	ErrEmptySegment = errors.New("path has empty segment")

	// ErrRelativeSegment occurs when a path still contains a "." or ".."
	// segment after resolution.
	ErrRelativeSegment = errors.New("path has relative segment")

	// ErrSeparatorInSegment occurs when a single path segment contains a path
	// separator.
	ErrSeparatorInSegment = errors.New("path segment contains separator")
)
