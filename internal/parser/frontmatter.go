package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// ParseFrontMatter splits raw file bytes into front matter and body.
// The format is ---\nyaml\n---\nbody. Missing, unterminated or malformed
// front matter is not an error: Data is left empty.
func ParseFrontMatter(raw []byte) Document {
	raw = bytes.TrimPrefix(raw, []byte("\ufeff"))
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	doc := Document{Data: map[string]any{}, Content: text}

	first, rest, found := strings.Cut(text, "\n")
	if !found || strings.TrimRight(first, " \t") != delimiter {
		return doc
	}

	// The closing delimiter must sit on a line of its own.
	var block strings.Builder
	for {
		line, next, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t") == delimiter {
			doc.Content = next
			break
		}
		if !more {
			return doc
		}
		block.WriteString(line)
		block.WriteByte('\n')
		rest = next
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(block.String()), &data); err != nil {
		return doc
	}
	if data != nil {
		doc.Data = data
	}
	return doc
}
