package extract

import (
	"regexp"
	"strings"
)

// Artifact spans are the tagged markup some assistants wrap generated
// content in. The tag name is fixed; everything interesting lives in the
// opening tag's attributes and the raw inner text.
var (
	artifactSpanRe = regexp.MustCompile(`(?s)<antArtifact\b([^>]*)>(.*?)</antArtifact>`)
	attributeRe    = regexp.MustCompile(`([\w-]+)="([^"]*)"`)
)

// parseAttributes extracts name="value" pairs from an opening tag.
// Order-insensitive; a duplicated attribute name overwrites the earlier
// value.
func parseAttributes(tag string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attributeRe.FindAllStringSubmatch(tag, -1) {
		attrs[m[1]] = m[2]
	}
	return attrs
}

// ExtractArtifacts scans the whole document for artifact spans and carves
// fragments out of each span's inner text. Spans whose type attribute names
// neither code nor html content are skipped entirely (prose and diagram
// artifacts carry nothing to materialize). Fragments from a span inherit
// the span's language hint — the explicit language attribute when present,
// otherwise a content sniff — unless they already carry their own.
//
// A code span with no internal path declaration yields no fragments. That
// mirrors how the rest of the pipeline treats unattributed content; see the
// single-file artifact tests before changing it.
func ExtractArtifacts(text string) []Fragment {
	var fragments []Fragment
	for _, m := range artifactSpanRe.FindAllStringSubmatch(text, -1) {
		attrs := parseAttributes(m[1])
		typ := attrs["type"]
		if !strings.Contains(typ, "code") && !strings.Contains(typ, "html") {
			continue
		}

		inner := m[2]
		hint := attrs["language"]
		if hint == "" {
			hint = SniffLanguage(inner)
		}

		for _, frag := range SegmentBlocks(inner) {
			if frag.LanguageHint == "" {
				frag.LanguageHint = hint
			}
			fragments = append(fragments, frag)
		}
	}
	return fragments
}
