package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	out := Render("# Roadmap\n## Week 1\n### Day 1")
	for _, want := range []string{"<h1>Roadmap</h1>", "<h2>Week 1</h2>", "<h3>Day 1</h3>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderEmphasis(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "Study **attention** first", "<p>Study <strong>attention</strong> first</p>"},
		{"underscore italics", "Read _the paper_ twice", "<p>Read <em>the paper</em> twice</p>"},
		{"star italics", "This is *important* here", "<p>This is <em>important</em> here</p>"},
		{"inline code", "Run `go test` daily", "<p>Run <code>go test</code> daily</p>"},
		{"no mid-word star italics", "a*b*c stays", "<p>a*b*c stays</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := Render(tt.in); out != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.in, out, tt.want)
			}
		})
	}
}

func TestRenderLists(t *testing.T) {
	out := Render("- one\n- two\n\n1. first\n2. second")
	want := "<ul>\n<li>one</li>\n<li>two</li>\n</ul>\n<ol>\n<li>first</li>\n<li>second</li>\n</ol>"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderBlankLineTerminatesList(t *testing.T) {
	out := Render("- one\n\nplain text")
	want := "<ul>\n<li>one</li>\n</ul>\n<p>plain text</p>"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderFencedCodeBlock(t *testing.T) {
	out := Render("Before\n```python\nprint('hi')\n```\nAfter")
	if !strings.Contains(out, "<pre><code>print(&#39;hi&#39;)</code></pre>") {
		t.Errorf("code block not restored escaped:\n%s", out)
	}
	if !strings.Contains(out, "<p>Before</p>") || !strings.Contains(out, "<p>After</p>") {
		t.Errorf("surrounding paragraphs lost:\n%s", out)
	}
}

func TestRenderEscapesScripts(t *testing.T) {
	out := Render("hello <script>alert(1)</script>")
	if strings.Contains(out, "<script>") {
		t.Fatalf("unescaped script tag in output:\n%s", out)
	}

	out = Render("```\n<script>alert(1)</script>\n```")
	if strings.Contains(out, "<script>") {
		t.Fatalf("unescaped script tag inside code block:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Errorf("escaped script content missing:\n%s", out)
	}
}

func TestRenderListMarkerNotItalicized(t *testing.T) {
	out := Render("* item one\n* item two")
	want := "<ul>\n<li>item one</li>\n<li>item two</li>\n</ul>"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}
