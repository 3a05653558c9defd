package extract

import "testing"

func TestLanguageByPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"out/src/lib.rs", "rust"},
		{"out/main.go", "go"},
		{"out/app/index.ts", "typescript"},
		{"out/script.PY", "python"},
		{"out/notes.unknown-ext", PlainText},
		{"out/no_extension", PlainText},
	}
	for _, c := range cases {
		if got := LanguageByPath(c.path); got != c.want {
			t.Fatalf("LanguageByPath(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

// Aliases share an extension; the reverse lookup must keep exactly one
// language per extension, with the canonical spelling winning.
func TestLanguageByPath_AliasResolution(t *testing.T) {
	if got := LanguageByPath("x.go"); got != "go" {
		t.Fatalf("expected canonical 'go' for .go, got %q", got)
	}
	if got := LanguageByPath("x.js"); got != "javascript" {
		t.Fatalf("expected canonical 'javascript' for .js, got %q", got)
	}
}

func TestSniffLanguage(t *testing.T) {
	cases := []struct {
		content string
		want    string
	}{
		{"<!DOCTYPE html>\n<body></body>", "html"},
		{"def f(): pass", "python"},
		{"package main\n\nfunc main() {}", "go"},
		{"fn main() {\n}", "rust"},
		{"nothing characteristic here", PlainText},
		{"", PlainText},
	}
	for _, c := range cases {
		if got := SniffLanguage(c.content); got != c.want {
			t.Fatalf("SniffLanguage(%q) = %q, want %q", c.content, got, c.want)
		}
	}
}

// The sniff list is order-sensitive: an HTML document that also contains
// "function " must still read as html because the html markers come first.
func TestSniffLanguage_OrderSensitive(t *testing.T) {
	content := "<!DOCTYPE html>\n<script>function f() {}</script>"
	if got := SniffLanguage(content); got != "html" {
		t.Fatalf("expected html, got %q", got)
	}
}
