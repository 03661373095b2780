package pathing

import "errors"

var (
	// ErrEmptyPath occurs when an empty string is given as the path to resolve.
	ErrEmptyPath = errors.New("path is empty")

	// ErrNoWorkingDir occurs when a relative path needs the current working
	// directory, but it cannot be established.
	ErrNoWorkingDir = errors.New("cannot establish working directory")

	// ErrNoHomeDir occurs when a home-relative path needs the home directory of
	// the invoking user, but it cannot be established.
	ErrNoHomeDir = errors.New("cannot establish home directory")
)
