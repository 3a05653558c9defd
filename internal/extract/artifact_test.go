package extract

import "testing"

func TestExtractArtifacts_CodeSpan(t *testing.T) {
	input := `Intro text.
<antArtifact identifier="app" type="application/vnd.ant.code" language="python" title="App">
// utils/x.py
` + "```python" + `
def f(): pass
` + "```" + `
</antArtifact>
Outro text.`
	frags := ExtractArtifacts(input)
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].DeclaredPath != "utils/x.py" {
		t.Fatalf("unexpected path %q", frags[0].DeclaredPath)
	}
	if frags[0].Content != "def f(): pass" {
		t.Fatalf("unexpected content %q", frags[0].Content)
	}
	if frags[0].LanguageHint != "python" {
		t.Fatalf("unexpected hint %q", frags[0].LanguageHint)
	}
}

// A markdown artifact is skipped even when its body contains lines shaped
// like path declarations.
func TestExtractArtifacts_NonCodeSpanSkipped(t *testing.T) {
	input := `<antArtifact identifier="notes" type="text/markdown" title="Notes">
// src/a.ts
` + "```ts" + `
const x = 1;
` + "```" + `
</antArtifact>`
	frags := ExtractArtifacts(input)
	if len(frags) != 0 {
		t.Fatalf("expected 0 fragments, got %d", len(frags))
	}
}

func TestExtractArtifacts_HTMLSpan(t *testing.T) {
	input := `<antArtifact identifier="page" type="text/html" title="Page">
// site/index.html
` + "```html" + `
<html><body>hi</body></html>
` + "```" + `
</antArtifact>`
	frags := ExtractArtifacts(input)
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].DeclaredPath != "site/index.html" {
		t.Fatalf("unexpected path %q", frags[0].DeclaredPath)
	}
}

func TestExtractArtifacts_MultipleSpans(t *testing.T) {
	input := `<antArtifact identifier="a" type="application/vnd.ant.code" language="go">
// cmd/a/main.go
` + "```go" + `
package main
` + "```" + `
</antArtifact>
between
<antArtifact identifier="b" type="application/vnd.ant.code" language="go">
// cmd/b/main.go
` + "```go" + `
package main
` + "```" + `
</antArtifact>`
	frags := ExtractArtifacts(input)
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	if frags[0].DeclaredPath != "cmd/a/main.go" || frags[1].DeclaredPath != "cmd/b/main.go" {
		t.Fatalf("unexpected paths %q, %q", frags[0].DeclaredPath, frags[1].DeclaredPath)
	}
}

// No language attribute: the span hint falls back to a content sniff.
func TestExtractArtifacts_SniffedHint(t *testing.T) {
	input := `<antArtifact identifier="x" type="application/vnd.ant.code">
// utils/x.py
` + "```" + `
def f(): pass
` + "```" + `
</antArtifact>`
	frags := ExtractArtifacts(input)
	if len(frags) != 1 {
		t.Fatalf("expected 1 fragment, got %d", len(frags))
	}
	if frags[0].LanguageHint != "python" {
		t.Fatalf("expected sniffed python hint, got %q", frags[0].LanguageHint)
	}
}

// Known gap, preserved on purpose: a code artifact whose body has no
// internal path declaration produces nothing rather than a synthesized
// file. Revisit only with a deliberate product decision.
func TestExtractArtifacts_NoPathDeclarationYieldsNothing(t *testing.T) {
	input := `<antArtifact identifier="solo" type="application/vnd.ant.code" language="go" title="Solo">
package main

func main() {}
</antArtifact>`
	frags := ExtractArtifacts(input)
	if len(frags) != 0 {
		t.Fatalf("expected 0 fragments, got %d", len(frags))
	}
}

func TestParseAttributes(t *testing.T) {
	attrs := parseAttributes(` identifier="x" type="text/html" data-rev="2" type="application/vnd.ant.code"`)
	if attrs["identifier"] != "x" {
		t.Fatalf("unexpected identifier %q", attrs["identifier"])
	}
	if attrs["data-rev"] != "2" {
		t.Fatalf("unexpected data-rev %q", attrs["data-rev"])
	}
	// Duplicate names overwrite.
	if attrs["type"] != "application/vnd.ant.code" {
		t.Fatalf("unexpected type %q", attrs["type"])
	}
}
