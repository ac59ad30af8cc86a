// Package sidebar builds a documentation site's navigation tree from a
// directory of Markdown documents.
//
// Each directory contributes its documents as leaves, ordered by their front
// matter order, and each subdirectory as a collapsed group. The first entry
// of every level stays first; the rest are sorted by title.
package sidebar

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/dgallion1/docnav/internal/navtree"
	"github.com/dgallion1/docnav/internal/parser"
)

const (
	DefaultRootMarker   = "docs"
	DefaultVendorMarker = "node_modules"
)

// Options configures a Builder.
type Options struct {
	RootBase     string // Directory the top-level Build/Compose call resolves against
	RootMarker   string // Path segment links are made relative to
	VendorMarker string // Directories containing this segment are never scanned
	Extension    string // Document extension, including the dot
	Logger       *slog.Logger
}

// Builder turns directories into sidebar entries. It holds no state between
// calls.
type Builder struct {
	src  Source
	opts Options
	log  *slog.Logger
}

// New returns a Builder reading from src. Empty options get defaults.
func New(src Source, opts Options) *Builder {
	if opts.RootMarker == "" {
		opts.RootMarker = DefaultRootMarker
	}
	if opts.VendorMarker == "" {
		opts.VendorMarker = DefaultVendorMarker
	}
	if opts.Extension == "" {
		opts.Extension = parser.DefaultExtension
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{src: src, opts: opts, log: log}
}

// Build composes the sidebar for dir, resolved against the root base.
func (b *Builder) Build(dir string) ([]*navtree.Node, error) {
	items, err := b.Compose(dir, true)
	if err != nil {
		return nil, err
	}
	leaves, groups := navtree.Count(items)
	b.log.Info("sidebar built", "dir", dir, "leaves", leaves, "groups", groups)
	return items, nil
}

// CollectLeaves returns one leaf per document directly inside dir, ordered
// by ascending front matter order. Ties keep enumeration order.
func (b *Builder) CollectLeaves(dir string) ([]*navtree.Node, error) {
	dir = NormalizePath(dir)
	files, err := b.src.Glob(globPattern(dir, "*"+b.opts.Extension))
	if err != nil {
		return nil, fmt.Errorf("list documents in %s: %w", dir, err)
	}

	items := make([]*navtree.Node, 0, len(files))
	for _, f := range files {
		if !parser.IsDocument(f, b.opts.Extension) {
			continue
		}
		doc, err := b.src.ReadDocument(f)
		if err != nil {
			return nil, fmt.Errorf("read document %s: %w", f, err)
		}

		title, ok := doc.Title()
		if !ok {
			title, ok = parser.FirstHeading(doc.Content)
		}
		if !ok {
			title = "No Title: " + dir
		}

		items = append(items, navtree.NewLeaf(title, RootRelative(f, b.opts.RootMarker), doc.Order()))
	}

	slices.SortStableFunc(items, byOrder)
	return items, nil
}

// Compose builds the entries for dir: its own documents followed by one
// group per subdirectory, with the first entry pinned and the rest sorted by
// title. With appendBase set, dir is taken relative to the root base: the two
// are joined as text, so an absolute dir is nested under the base rather than
// replacing it.
func (b *Builder) Compose(dir string, appendBase bool) ([]*navtree.Node, error) {
	if appendBase && b.opts.RootBase != "" {
		dir = b.opts.RootBase + "/" + dir
	}
	dir = NormalizePath(dir)

	ancestors := map[string]bool{}
	if id, ok := b.identity(dir); ok {
		ancestors[id] = true
	}
	return b.compose(dir, ancestors)
}

func (b *Builder) compose(dir string, ancestors map[string]bool) ([]*navtree.Node, error) {
	items, err := b.CollectLeaves(dir)
	if err != nil {
		return nil, err
	}
	b.log.Debug("scanned directory", "dir", dir, "documents", len(items))

	entries, err := b.src.Glob(globPattern(dir, "*"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	for _, entry := range entries {
		child := NormalizePath(entry)
		isDir, err := b.src.IsDir(child)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", child, err)
		}
		if !isDir {
			continue
		}
		if HasSegment(child, b.opts.VendorMarker) {
			continue
		}

		id, tracked := b.identity(child)
		if tracked && ancestors[id] {
			b.log.Warn("skipping directory cycle", "dir", child, "target", id)
			continue
		}
		if tracked {
			ancestors[id] = true
		}
		children, err := b.compose(child, ancestors)
		if tracked {
			delete(ancestors, id)
		}
		if err != nil {
			return nil, err
		}

		slices.SortStableFunc(children, bySiblingOrder())
		items = append(items, navtree.NewGroup(baseName(child), children))
	}

	return pinFirst(items), nil
}

// identity resolves dir to the real directory it names, when the source
// can resolve symlinks.
func (b *Builder) identity(dir string) (string, bool) {
	rp, ok := b.src.(RealPather)
	if !ok {
		return "", false
	}
	id, err := rp.RealPath(dir)
	if err != nil {
		return "", false
	}
	return id, true
}
