// Package createpath implements the create_path entry point: the recursive
// creation of an output directory path, given in relative, absolute,
// home-relative or backreferencing form.
//
// The outcome is communicated solely as an integer status, with [StatusSuccess]
// meaning the target directory exists and is writable, and [StatusFailure]
// meaning it could not be established.
package createpath

import (
	"fmt"
	"log/slog"

	"github.com/desertwitch/mkpath/internal/io"
	"github.com/desertwitch/mkpath/internal/pathing"
	"github.com/desertwitch/mkpath/internal/validation"
)

const (
	// StatusSuccess is returned when the target directory exists and is
	// writable.
	StatusSuccess = 0

	// StatusFailure is returned when the target directory could not be
	// established.
	StatusFailure = 1
)

type pathingProvider interface {
	ResolvePath(raw string) (pathing.ResolvedPath, error)
}

type ioProvider interface {
	EnsurePath(p pathing.ResolvedPath) (*io.Report, error)
}

// Handler is the principal implementation for creating directory paths.
type Handler struct {
	pathingHandler pathingProvider
	ioHandler      ioProvider
}

// NewHandler returns a pointer to a new create_path [Handler].
func NewHandler(pathingHandler pathingProvider, ioHandler ioProvider) *Handler {
	return &Handler{
		pathingHandler: pathingHandler,
		ioHandler:      ioHandler,
	}
}

// CreatePath creates every missing directory along the raw path and returns
// [StatusSuccess] if the target directory then exists and is writable. Any
// failure is logged and returned as [StatusFailure].
func (h *Handler) CreatePath(raw string) int {
	if _, err := h.Create(raw); err != nil {
		slog.Error("Failed to create path",
			"path", raw,
			"err", err,
		)

		return StatusFailure
	}

	return StatusSuccess
}

// Create creates every missing directory along the raw path. It returns the
// [io.Report] of the processed directories, which is nil when the raw path
// could not be resolved or validated.
func (h *Handler) Create(raw string) (*io.Report, error) {
	p, err := h.pathingHandler.ResolvePath(raw)
	if err != nil {
		return nil, fmt.Errorf("(createpath) failed to resolve: %w", err)
	}

	if err := validation.ValidatePath(p); err != nil {
		return nil, fmt.Errorf("(createpath) failed to validate: %w", err)
	}

	report, err := h.ioHandler.EnsurePath(p)
	if err != nil {
		return report, fmt.Errorf("(createpath) failed to ensure: %w", err)
	}

	slog.Debug("Established path",
		"path", raw,
		"resolved", p.String(),
		"created", len(report.DirsCreated),
	)

	return report, nil
}
