package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const maxHeadingLevel = 6

// FirstHeading returns the text of the first heading line in a Markdown body:
// a line starting with one to six # markers. The markers and at most one
// following space are removed; the rest of the line is kept as written,
// markup and trailing #s included. Lines inside code blocks are ignored.
func FirstHeading(body string) (string, bool) {
	src := []byte(body)
	code := codeLines(src)

	for start := 0; start < len(src); {
		end := bytes.IndexByte(src[start:], '\n')
		if end < 0 {
			end = len(src)
		} else {
			end += start
		}
		if !code[start] {
			if title, ok := headingText(src[start:end]); ok {
				return title, true
			}
		}
		start = end + 1
	}
	return "", false
}

func headingText(line []byte) (string, bool) {
	line = bytes.TrimRight(line, "\r")
	rest := bytes.TrimLeft(line, " \t")

	level := 0
	for level < len(rest) && rest[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return "", false
	}
	rest = rest[level:]
	if len(rest) > 0 && (rest[0] == ' ' || rest[0] == '\t') {
		rest = rest[1:]
	}

	title := string(rest)
	if strings.TrimSpace(title) == "" {
		return "", false
	}
	return title, true
}

// codeLines returns the start offsets of every line goldmark places inside a
// fenced or indented code block.
func codeLines(src []byte) map[int]bool {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	lines := map[int]bool{}
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			segs := n.Lines()
			for i := 0; i < segs.Len(); i++ {
				s := segs.At(i).Start
				lines[bytes.LastIndexByte(src[:s], '\n')+1] = true
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return lines
}
