package pathing

import (
	"strings"
)

const (
	rootMarker = "/"
	homeMarker = "~"

	separator = "/"
	current   = "."
	parent    = ".."
)

// Form is the form of a raw path, as detected by its leading marker.
type Form int

const (
	// FormRelative is a path relative to the current working directory.
	FormRelative Form = iota

	// FormAbsolute is a path beginning with the root marker.
	FormAbsolute

	// FormHome is a path beginning with the home marker, either alone ("~")
	// or followed by a separator ("~/..."). A "~user" prefix is not expanded
	// and resolves as a relative path.
	FormHome
)

// ResolvedPath is an absolute, root-anchored sequence of path segments. It
// never contains empty, "." or ".." segments. A [ResolvedPath] without any
// segments is the filesystem root.
type ResolvedPath struct {
	segments []string
}

// NewResolvedPath returns a [ResolvedPath] built from already normalized
// segments. The segments are copied.
func NewResolvedPath(segments ...string) ResolvedPath {
	s := make([]string, len(segments))
	copy(s, segments)

	return ResolvedPath{segments: s}
}

// Segments returns a copy of the path segments, ordered from root to leaf.
func (p ResolvedPath) Segments() []string {
	s := make([]string, len(p.segments))
	copy(s, p.segments)

	return s
}

// IsRoot reports whether the path is the filesystem root.
func (p ResolvedPath) IsRoot() bool {
	return len(p.segments) == 0
}

// String returns the absolute path in its string form.
func (p ResolvedPath) String() string {
	return rootMarker + strings.Join(p.segments, separator)
}

// Prefixes returns the absolute string form of every ancestor of the path,
// beginning with the first segment below the root and ending with the path
// itself. The root has no prefixes.
func (p ResolvedPath) Prefixes() []string {
	prefixes := make([]string, 0, len(p.segments))

	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteString(separator)
		b.WriteString(seg)
		prefixes = append(prefixes, b.String())
	}

	return prefixes
}

// Resolve classifies and normalizes a raw path into a [ResolvedPath].
//
// Absolute paths are normalized as given, home-relative paths have the marker
// substituted with home, and all other paths are prepended with cwd. Both cwd
// and home are expected to be absolute; they are anchored at the root
// regardless. An empty raw path resolves to cwd.
func Resolve(raw, cwd, home string) ResolvedPath {
	var full string

	switch formOf(raw) {
	case FormAbsolute:
		full = raw

	case FormHome:
		full = home + separator + strings.TrimPrefix(raw, homeMarker)

	case FormRelative:
		full = cwd + separator + raw
	}

	return ResolvedPath{segments: normalize(full)}
}

func formOf(raw string) Form {
	switch {
	case strings.HasPrefix(raw, rootMarker):
		return FormAbsolute

	case raw == homeMarker || strings.HasPrefix(raw, homeMarker+separator):
		return FormHome

	default:
		return FormRelative
	}
}

// normalize splits a path into segments, dropping empty and "." segments and
// collapsing ".." against the previous segment. A ".." at the root is dropped.
func normalize(path string) []string {
	segments := []string{}

	for _, seg := range strings.Split(path, separator) {
		switch seg {
		case "", current:
			continue

		case parent:
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}

		default:
			segments = append(segments, seg)
		}
	}

	return segments
}
