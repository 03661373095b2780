package filesystem

import "errors"

// ErrInspectFailed occurs when a path position cannot be inspected for a
// reason other than the entry not existing (such as missing search permission
// on a parent directory).
var ErrInspectFailed = errors.New("failed to inspect path")
