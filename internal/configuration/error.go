package configuration

import "errors"

var (
	// ErrInvalidDirMode occurs when a configured directory mode is not a valid
	// octal permission mode.
	ErrInvalidDirMode = errors.New("invalid directory mode")

	// ErrOwnerNotPermitted occurs when a configured directory mode would not
	// allow the owner to read, write and enter created directories.
	ErrOwnerNotPermitted = errors.New("mode lacks owner rwx permissions")

	// ErrInvalidLogLevel occurs when a configured log level is not known.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
