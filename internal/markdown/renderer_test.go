package markdown

import (
	"strings"
	"testing"
)

func TestRender_HeadingAndEmphasis(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render([]byte("# Title\n\nSome *text*."))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Errorf("missing h1 in %q", html)
	}
	if !strings.Contains(html, "<em>text</em>") {
		t.Errorf("missing em in %q", html)
	}
}

func TestRender_ListLinkAndCode(t *testing.T) {
	r := NewRenderer()
	src := "- one\n- two\n\n[link](https://example.com)\n\n```\ncode here\n```\n"
	html, err := r.Render([]byte(src))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"<ul>", "<li>one</li>", `<a href="https://example.com">link</a>`, "<pre><code>code here"} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %q", want, html)
		}
	}
}

func TestRender_FragmentNotDocument(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render([]byte("plain paragraph"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(html, "<html") || strings.Contains(html, "<body") {
		t.Errorf("expected a fragment, got %q", html)
	}
	if !strings.Contains(html, "<p>plain paragraph</p>") {
		t.Errorf("missing paragraph in %q", html)
	}
}

func TestRender_Empty(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render(nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(html) != "" {
		t.Errorf("expected empty output, got %q", html)
	}
}
