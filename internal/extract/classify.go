package extract

import (
	"regexp"
	"strings"
)

// ParsedLine is the classification result for one line of text outside any
// fenced block. Consumed immediately by the segmenter, never retained.
type ParsedLine struct {
	IsPathDeclaration bool
	DeclaredPath      string
	TrailingComment   string // description after the path, or the comment body
}

// validPathRe accepts relative paths of word-char/hyphen segments ending in
// an extension, e.g. "src/app/main.ts" or "Makefile.am". Dots are only
// permitted before the extension, which also keeps ".." out of segments.
var validPathRe = regexp.MustCompile(`^[\w-]+(?:/[\w-]+)*\.[\w-]+$`)

// IsValidPath reports whether p is a safe, well-formed relative file path.
// This is the security boundary that keeps writes inside the output
// directory: traversal tokens, absolute paths, and backslash separators are
// all rejected before a path can reach the filesystem sink.
func IsValidPath(p string) bool {
	if p == "" {
		return false
	}
	if strings.Contains(p, "..") {
		return false
	}
	if strings.HasPrefix(p, "/") {
		return false
	}
	if strings.Contains(p, `\`) {
		return false
	}
	return validPathRe.MatchString(p)
}

// The three recognized path-declaration forms, in priority order. Each is
// anchored to a line that already had its leading "//" stripped.
var (
	inlinePathRe  = regexp.MustCompile(`^(\S+?)(?:\s*:\s*(.+))?$`)
	fileDirRe     = regexp.MustCompile(`^@file\s+(\S+)\s*$`)
	filepathDirRe = regexp.MustCompile(`^filepath:\s*(\S+)\s*$`)
)

// ClassifyLine decides whether a single line declares a file path or is an
// ordinary comment/content line. The declaration forms are tried in fixed
// order; a captured path that fails validation falls through to the next
// form rather than being promoted, and if every form fails the line degrades
// to a plain comment carrying its own marker-stripped text.
func ClassifyLine(line string) ParsedLine {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return ParsedLine{}
	}
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, "//"))

	if m := inlinePathRe.FindStringSubmatch(body); m != nil && IsValidPath(m[1]) {
		return ParsedLine{
			IsPathDeclaration: true,
			DeclaredPath:      m[1],
			TrailingComment:   strings.TrimSpace(m[2]),
		}
	}
	if m := fileDirRe.FindStringSubmatch(body); m != nil && IsValidPath(m[1]) {
		return ParsedLine{IsPathDeclaration: true, DeclaredPath: m[1]}
	}
	if m := filepathDirRe.FindStringSubmatch(body); m != nil && IsValidPath(m[1]) {
		return ParsedLine{IsPathDeclaration: true, DeclaredPath: m[1]}
	}

	return ParsedLine{TrailingComment: body}
}
