package sidebar

import (
	"path"
	"strings"
)

// NormalizePath rewrites p with forward slashes only, whatever the host
// separator is, and cleans duplicate and trailing separators.
func NormalizePath(p string) string {
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

// RootRelative strips every segment of p up to and including the first
// segment equal to marker, returning a "/"-prefixed link. When marker does
// not occur, the normalized path is returned unchanged.
func RootRelative(p, marker string) string {
	n := NormalizePath(p)
	if marker == "" {
		return n
	}
	segs := strings.Split(n, "/")
	for i, s := range segs {
		if s == marker {
			return "/" + strings.Join(segs[i+1:], "/")
		}
	}
	return n
}

// HasSegment reports whether any segment of p equals marker.
func HasSegment(p, marker string) bool {
	if marker == "" {
		return false
	}
	for _, s := range strings.Split(NormalizePath(p), "/") {
		if s == marker {
			return true
		}
	}
	return false
}

// baseName returns the last segment of a normalized path.
func baseName(p string) string {
	return path.Base(NormalizePath(p))
}
