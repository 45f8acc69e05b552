// Package markdown renders the constrained Markdown subset the course-plan
// prompt asks for into HTML fragments. Single pass, no nesting; this is a
// best-effort renderer, not a Markdown implementation.
package markdown

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

var (
	fenceRe      = regexp.MustCompile("(?s)```[a-zA-Z]*[ \t]*\n?(.*?)```")
	placeholder  = regexp.MustCompile("\x00code:(\\d+)\x00")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicUsRe   = regexp.MustCompile(`(^|\s)_([^_\s](?:[^_]*[^_\s])?)_`)
	italicStarRe = regexp.MustCompile(`(^|\s)\*([^*\s](?:[^*]*[^*\s])?)\*`)
	orderedRe    = regexp.MustCompile(`^\d+\.\s+(.*)`)
)

// Render converts src into a sequence of block-level HTML fragments joined by
// newlines. Fenced code blocks are pulled out first so the other rules cannot
// touch them, and restored escaped-verbatim at the end. Everything else is
// HTML-escaped before the inline transforms run.
func Render(src string) string {
	var code []string
	src = fenceRe.ReplaceAllStringFunc(src, func(m string) string {
		inner := fenceRe.FindStringSubmatch(m)[1]
		code = append(code, strings.TrimRight(inner, "\n"))
		return fmt.Sprintf("\x00code:%d\x00", len(code)-1)
	})

	var blocks []string
	listTag := ""

	closeList := func() {
		if listTag != "" {
			blocks = append(blocks, "</"+listTag+">")
			listTag = ""
		}
	}
	openList := func(tag string) {
		if listTag != tag {
			closeList()
			blocks = append(blocks, "<"+tag+">")
			listTag = tag
		}
	}

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			closeList()
		case strings.HasPrefix(line, "### "):
			closeList()
			blocks = append(blocks, "<h3>"+inline(line[4:])+"</h3>")
		case strings.HasPrefix(line, "## "):
			closeList()
			blocks = append(blocks, "<h2>"+inline(line[3:])+"</h2>")
		case strings.HasPrefix(line, "# "):
			closeList()
			blocks = append(blocks, "<h1>"+inline(line[2:])+"</h1>")
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			openList("ul")
			blocks = append(blocks, "<li>"+inline(line[2:])+"</li>")
		case orderedRe.MatchString(line):
			openList("ol")
			blocks = append(blocks, "<li>"+inline(orderedRe.FindStringSubmatch(line)[1])+"</li>")
		case placeholder.MatchString(line) && placeholder.FindString(line) == line:
			closeList()
			blocks = append(blocks, line)
		default:
			closeList()
			blocks = append(blocks, "<p>"+inline(line)+"</p>")
		}
	}
	closeList()

	out := strings.Join(blocks, "\n")
	return placeholder.ReplaceAllStringFunc(out, func(m string) string {
		var idx int
		fmt.Sscanf(placeholder.FindStringSubmatch(m)[1], "%d", &idx)
		if idx < 0 || idx >= len(code) {
			return ""
		}
		return "<pre><code>" + html.EscapeString(code[idx]) + "</code></pre>"
	})
}

// inline escapes a line and applies the span-level transforms. Bold runs
// before italics so ** is not eaten as two single stars.
func inline(s string) string {
	s = html.EscapeString(strings.TrimSpace(s))
	s = inlineCodeRe.ReplaceAllString(s, "<code>$1</code>")
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicUsRe.ReplaceAllString(s, "$1<em>$2</em>")
	s = italicStarRe.ReplaceAllString(s, "$1<em>$2</em>")
	return s
}
