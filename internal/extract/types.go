package extract

// Origin identifies where a FileRecord was carved from.
type Origin string

const (
	// OriginCodeBlock marks records produced from embedded code, whether a
	// bare fenced block or one nested inside an artifact span.
	OriginCodeBlock Origin = "code-block"
)

// Fragment is a single extracted unit of code: an author-declared relative
// path and the content accumulated under it. Fragments are immutable once
// emitted by the segmenter.
type Fragment struct {
	DeclaredPath string // raw relative path as written in the document
	Content      string // verbatim text, fence delimiters removed
	LanguageHint string // optional, set when carved from an artifact span
}

// FileRecord is a Fragment resolved against an output directory and ready
// for the write sink.
type FileRecord struct {
	Language     string
	FileName     string // basename of ResolvedPath
	ResolvedPath string // output directory joined with the declared path
	Content      string
	Origin       Origin
}
