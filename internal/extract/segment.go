package extract

import "strings"

// segmenter is the explicit state machine that walks a text span line by
// line and groups fenced code under the most recent path declaration.
// Two pieces of state: whether the scan is inside a fenced block, and which
// path (if any) is currently collecting content.
type segmenter struct {
	insideFence bool
	activePath  string
	fenceBuf    strings.Builder // lines of the in-progress fenced block
	contentBuf  strings.Builder // accumulated content for activePath
	fragments   []Fragment
}

// SegmentBlocks scans text and returns one Fragment per path-declaration
// span, in document order. Content under a path may span multiple fenced
// blocks plus any prose lines between them; fence delimiter lines are never
// part of the content. A path re-declared later starts a fresh Fragment —
// deduplication is the coordinator's job, not the segmenter's.
func SegmentBlocks(text string) []Fragment {
	s := &segmenter{}
	for _, line := range strings.Split(text, "\n") {
		s.feed(line)
	}
	s.finalize()
	return s.fragments
}

func (s *segmenter) feed(line string) {
	if isFenceMarker(line) {
		s.toggleFence()
		return
	}

	if s.insideFence {
		// Opaque code content. The classifier must never run here: a
		// comment inside a fence that happens to look like a path
		// declaration is still just code.
		s.fenceBuf.WriteString(line)
		s.fenceBuf.WriteByte('\n')
		return
	}

	parsed := ClassifyLine(line)
	if parsed.IsPathDeclaration {
		s.finalize()
		s.activePath = parsed.DeclaredPath
		if parsed.TrailingComment != "" {
			// Keep the declaration's description; it lives outside any
			// fence and would otherwise be lost.
			s.contentBuf.WriteString("// " + parsed.TrailingComment + "\n")
		}
		return
	}

	if s.activePath != "" {
		// Prose or comments between fences under the same path.
		s.contentBuf.WriteString(line)
		s.contentBuf.WriteByte('\n')
	}
	// No active path: front-matter prose with nothing to attach to.
}

func (s *segmenter) toggleFence() {
	if s.insideFence {
		// Closing fence: flush the fenced content into the active path's
		// running buffer. Fenced code with no declared path is discarded.
		if s.activePath != "" {
			s.contentBuf.WriteString(s.fenceBuf.String())
		}
		s.fenceBuf.Reset()
	}
	s.insideFence = !s.insideFence
}

// finalize emits the active path's accumulated content as a Fragment, if
// there is anything to emit, and resets the accumulator.
func (s *segmenter) finalize() {
	if s.activePath != "" {
		content := trimBlankEdges(s.contentBuf.String())
		if content != "" {
			s.fragments = append(s.fragments, Fragment{
				DeclaredPath: s.activePath,
				Content:      content,
			})
		}
	}
	s.activePath = ""
	s.contentBuf.Reset()
}

// isFenceMarker reports whether a line is solely a triple-backtick fence,
// optionally carrying a language tag (which is ignored; the fence only
// toggles state).
func isFenceMarker(line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "```") {
		return false
	}
	tag := strings.TrimPrefix(trimmed, "```")
	return !strings.ContainsAny(tag, " \t`")
}

// trimBlankEdges removes leading and trailing blank lines (and the final
// newline) while preserving interior spacing verbatim.
func trimBlankEdges(content string) string {
	lines := strings.Split(content, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
