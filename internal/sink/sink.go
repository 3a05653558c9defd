// Package sink performs the physical writes for extracted file records.
// Writes are sequential, per-file failures are collected rather than
// aborting the batch, and file contents go to disk verbatim.
package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/carve/internal/extract"
)

// FileError records a single failed write for end-of-run reporting.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Summary is the outcome of one WriteAll batch.
type Summary struct {
	Written []string
	Skipped []string
	Failed  []FileError
}

// Preflight returns the resolved paths of records that already exist on
// disk, so the caller can decide on an overwrite policy before any write
// happens. Stat errors other than not-exist are treated as existing: better
// to ask than to clobber.
func Preflight(records []extract.FileRecord) []string {
	var existing []string
	for _, rec := range records {
		if _, err := os.Stat(rec.ResolvedPath); err == nil || !os.IsNotExist(err) {
			existing = append(existing, rec.ResolvedPath)
		}
	}
	return existing
}

// WriteAll writes each record in order. When skipExisting is set, records
// whose resolved path already exists are skipped (reported, not erred).
// A failure on one file never prevents attempting the rest.
func WriteAll(records []extract.FileRecord, skipExisting bool) Summary {
	var sum Summary
	for _, rec := range records {
		if skipExisting {
			if _, err := os.Stat(rec.ResolvedPath); err == nil {
				sum.Skipped = append(sum.Skipped, rec.ResolvedPath)
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(rec.ResolvedPath), 0755); err != nil {
			sum.Failed = append(sum.Failed, FileError{Path: rec.ResolvedPath, Err: err})
			continue
		}
		if err := WriteFileAtomic(rec.ResolvedPath, []byte(rec.Content), 0644); err != nil {
			sum.Failed = append(sum.Failed, FileError{Path: rec.ResolvedPath, Err: err})
			continue
		}
		sum.Written = append(sum.Written, rec.ResolvedPath)
	}
	return sum
}
