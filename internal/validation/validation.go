// Package validation implements the checks that a resolved path has to pass
// before any directory on it is created.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertwitch/mkpath/internal/pathing"
)

// ValidatePath verifies that a [pathing.ResolvedPath] consists only of
// non-empty segments that are neither "." nor ".." and contain no separator.
func ValidatePath(p pathing.ResolvedPath) error {
	for idx, seg := range p.Segments() {
		if err := validateSegment(seg); err != nil {
			return fmt.Errorf("(validation) segment %d of %s: %w", idx, p.String(), err)
		}
	}

	return nil
}

func validateSegment(seg string) error {
	if seg == "" {
		return ErrEmptySegment
	}

	if seg == "." || seg == ".." {
		return ErrRelativeSegment
	}

	if strings.ContainsRune(seg, filepath.Separator) {
		return ErrSeparatorInSegment
	}

	return nil
}
