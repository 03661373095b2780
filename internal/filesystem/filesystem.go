// Package filesystem implements the inspection of filesystem entries that the
// directory creation relies on: classifying what occupies a path position and
// whether a directory is writable by the invoking user.
package filesystem

import (
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Access(path string, mode uint32) error
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(unixHandler unixProvider) *Handler {
	return &Handler{
		unixHandler: unixHandler,
	}
}
