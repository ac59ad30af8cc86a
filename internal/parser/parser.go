package parser

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultExtension is the document extension scanned when none is configured.
const DefaultExtension = ".md"

// Document is a source file split into front matter fields and body text.
type Document struct {
	Data    map[string]any // Front matter fields (empty if none)
	Content string         // Body after the front matter block
}

// Title returns the front matter title when it is set to a non-empty scalar.
func (d Document) Title() (string, bool) {
	v, ok := d.Data["title"]
	if !ok || v == nil {
		return "", false
	}
	var title string
	switch t := v.(type) {
	case string:
		title = t
	case int, int64, float64, bool:
		title = fmt.Sprint(t)
	default:
		return "", false
	}
	if title == "" {
		return "", false
	}
	return title, true
}

// Order returns the front matter order, or 0 when it is missing or not a number.
func (d Document) Order() float64 {
	switch v := d.Data["order"].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return 0
}

// IsDocument checks if a file name carries the document extension.
// An empty ext means DefaultExtension.
func IsDocument(name, ext string) bool {
	if ext == "" {
		ext = DefaultExtension
	}
	return strings.EqualFold(filepath.Ext(name), ext)
}
