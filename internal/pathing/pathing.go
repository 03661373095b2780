// Package pathing implements the resolution of raw path strings into absolute,
// root-anchored and normalized paths.
//
// Three forms of raw path are recognized: absolute paths (leading "/"),
// home-relative paths (leading "~") and relative paths, which are resolved
// against the current working directory. Any ".." backreferences are collapsed
// against the preceding segments during normalization. Resolution itself is a
// pure string operation and never touches the filesystem.
package pathing

import (
	"fmt"
)

type envProvider interface {
	Getwd() (string, error)
	UserHomeDir() (string, error)
}

// Handler is the principal implementation for the pathing services. It
// establishes the ambient working and home directories through its
// [envProvider] before resolving the raw path with [Resolve].
type Handler struct {
	envHandler envProvider
}

// NewHandler returns a pointer to a new pathing [Handler].
func NewHandler(envHandler envProvider) *Handler {
	return &Handler{
		envHandler: envHandler,
	}
}

// ResolvePath resolves a raw path into a [ResolvedPath], looking up the
// working directory or home directory only when the form of the path needs
// them. An empty raw path is rejected with [ErrEmptyPath].
func (h *Handler) ResolvePath(raw string) (ResolvedPath, error) {
	if raw == "" {
		return ResolvedPath{}, ErrEmptyPath
	}

	var cwd, home string

	switch formOf(raw) {
	case FormHome:
		dir, err := h.envHandler.UserHomeDir()
		if err != nil {
			return ResolvedPath{}, fmt.Errorf("(pathing) %w: %w", ErrNoHomeDir, err)
		}
		home = dir

	case FormRelative:
		dir, err := h.envHandler.Getwd()
		if err != nil {
			return ResolvedPath{}, fmt.Errorf("(pathing) %w: %w", ErrNoWorkingDir, err)
		}
		cwd = dir

	case FormAbsolute:
	}

	return Resolve(raw, cwd, home), nil
}
