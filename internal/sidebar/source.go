package sidebar

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dgallion1/docnav/internal/parser"
)

// Source is everything the builder needs from a file tree.
type Source interface {
	// Glob returns the paths matching pattern in lexical order.
	Glob(pattern string) ([]string, error)
	// ReadDocument reads and splits a document.
	ReadDocument(path string) (parser.Document, error)
	// IsDir reports whether path is a directory.
	IsDir(path string) (bool, error)
}

// RealPather is implemented by sources that can resolve symlinks. The
// builder uses it to stop descending into directory cycles.
type RealPather interface {
	RealPath(path string) (string, error)
}

// OSSource reads the local filesystem.
type OSSource struct{}

func (OSSource) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, err
	}
	return visible(matches, filepath.Base), nil
}

func (OSSource) ReadDocument(path string) (parser.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return parser.Document{}, err
	}
	return parser.ParseFrontMatter(raw), nil
}

func (OSSource) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (OSSource) RealPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

// FSSource reads an fs.FS. Paths are slash-separated and unrooted, as fs.FS
// requires.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.Glob(s.FS, fsName(pattern), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, err
	}
	return visible(matches, path.Base), nil
}

func (s FSSource) ReadDocument(name string) (parser.Document, error) {
	raw, err := fs.ReadFile(s.FS, fsName(name))
	if err != nil {
		return parser.Document{}, err
	}
	return parser.ParseFrontMatter(raw), nil
}

func (s FSSource) IsDir(name string) (bool, error) {
	info, err := fs.Stat(s.FS, fsName(name))
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// fsName turns a builder path into an fs.FS name.
func fsName(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return "."
	}
	return strings.TrimPrefix(p, "./")
}

// visible drops hidden entries and sorts the rest.
func visible(matches []string, base func(string) string) []string {
	out := matches[:0]
	for _, m := range matches {
		if strings.HasPrefix(base(m), ".") {
			continue
		}
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// globPattern joins an escaped directory with a wildcard suffix.
func globPattern(dir, suffix string) string {
	return escapeMeta(dir) + "/" + suffix
}

// escapeMeta quotes glob metacharacters in a literal path. FilepathGlob
// treats backslashes as separators on Windows, so nothing is escaped there.
func escapeMeta(p string) string {
	if filepath.Separator == '\\' {
		return p
	}
	var b strings.Builder
	for _, r := range p {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

var (
	_ Source     = OSSource{}
	_ RealPather = OSSource{}
	_ Source     = FSSource{}
)
