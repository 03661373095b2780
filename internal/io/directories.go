package io

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/desertwitch/mkpath/internal/filesystem"
	"github.com/desertwitch/mkpath/internal/pathing"
)

// EnsurePath establishes all directories of a [pathing.ResolvedPath], from the
// root down to the target, and verifies that the target is writable.
//
// The returned [Report] is never nil, also on failure it holds the directories
// that were processed up to the failing path position. The returned error wraps
// one of [ErrBlockedByFile], [ErrPermissionDenied], [ErrCreationFailed] or
// [ErrNotWritable].
func (i *Handler) EnsurePath(p pathing.ResolvedPath) (*Report, error) {
	report := &Report{}

	for _, dir := range p.Prefixes() {
		if err := i.ensureDirectory(dir, report); err != nil {
			return report, err
		}
	}

	target := p.String()
	if !i.fsHandler.IsWritable(target) {
		return report, fmt.Errorf("(io) %w: %s", ErrNotWritable, target)
	}

	return report, nil
}

func (i *Handler) ensureDirectory(dir string, report *Report) error {
	kind, err := i.fsHandler.EntryKind(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("(io) %w: %w", ErrPermissionDenied, err)
		}

		return fmt.Errorf("(io) %w: %w", ErrCreationFailed, err)
	}

	switch kind {
	case filesystem.EntryDirectory:
		report.DirsWalked = append(report.DirsWalked, dir)

		return nil

	case filesystem.EntryOther:
		return fmt.Errorf("(io) %w: %s", ErrBlockedByFile, dir)

	case filesystem.EntryMissing:
	}

	if err := i.unixHandler.Mkdir(dir, i.dirMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			// Created by someone else since it was inspected.
			return i.recheckDirectory(dir, report, err)
		}

		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("(io) %w: %s: %w", ErrPermissionDenied, dir, err)
		}

		return fmt.Errorf("(io) %w: %s: %w", ErrCreationFailed, dir, err)
	}

	slog.Debug("Created directory",
		"path", dir,
		"mode", fmt.Sprintf("%#o", i.dirMode),
	)

	report.DirsWalked = append(report.DirsWalked, dir)
	report.DirsCreated = append(report.DirsCreated, dir)

	return nil
}

func (i *Handler) recheckDirectory(dir string, report *Report, mkdirErr error) error {
	kind, err := i.fsHandler.EntryKind(dir)
	if err != nil {
		return fmt.Errorf("(io) %w: %s: %w", ErrCreationFailed, dir, mkdirErr)
	}

	switch kind {
	case filesystem.EntryDirectory:
		report.DirsWalked = append(report.DirsWalked, dir)

		return nil

	case filesystem.EntryOther:
		return fmt.Errorf("(io) %w: %s", ErrBlockedByFile, dir)

	default:
		return fmt.Errorf("(io) %w: %s: %w", ErrCreationFailed, dir, mkdirErr)
	}
}
