// Package extract carves embedded code fragments out of a free-form
// assistant transcript and resolves them into write-ready file records.
//
// Two embedding conventions are recognized: fenced code blocks preceded by
// a //-comment declaring a relative path, and tagged artifact spans whose
// inner text carries the same path comments. The pipeline is pure: it does
// no I/O, holds no state across calls, and malformed input yields fewer
// records, never an error.
package extract

import "path/filepath"

// Extract runs the full pipeline over a document: direct fenced-block scan,
// then artifact-span scan, then resolution against outDir with first-wins
// deduplication keyed on the resolved path. Records come back in the order
// their winning fragment appeared; direct fragments are processed first, so
// they win collisions with artifact fragments.
func Extract(text, outDir string) []FileRecord {
	// The direct scan sees the document with artifact spans excised.
	// Otherwise a span's interior would be extracted twice and its tag
	// lines would be absorbed as prose into whatever path was active.
	fragments := SegmentBlocks(artifactSpanRe.ReplaceAllString(text, ""))
	fragments = append(fragments, ExtractArtifacts(text)...)

	seen := make(map[string]bool)
	var records []FileRecord
	for _, frag := range fragments {
		resolved := filepath.Join(outDir, filepath.FromSlash(frag.DeclaredPath))
		if seen[resolved] {
			continue
		}
		seen[resolved] = true

		language := frag.LanguageHint
		if language == "" {
			language = LanguageByPath(resolved)
		}

		records = append(records, FileRecord{
			Language:     language,
			FileName:     filepath.Base(resolved),
			ResolvedPath: resolved,
			Content:      frag.Content,
			Origin:       OriginCodeBlock,
		})
	}
	return records
}
