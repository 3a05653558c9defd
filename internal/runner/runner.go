// Package runner drives one extraction pass end to end: read the
// transcript, carve records out of it, settle the overwrite policy, write
// through the sink, and persist a run report.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jorge-barreto/carve/internal/config"
	"github.com/jorge-barreto/carve/internal/extract"
	"github.com/jorge-barreto/carve/internal/report"
	"github.com/jorge-barreto/carve/internal/sink"
	"github.com/jorge-barreto/carve/internal/ux"
)

// Runner holds everything one extraction pass needs. Each Run call is
// independent; re-running on the same input is idempotent modulo the
// overwrite policy.
type Runner struct {
	Config   *config.Config
	Input    string    // path to the transcript document
	StateDir string    // where run reports live (.carve)
	Stdin    io.Reader // overwrite prompt input, os.Stdin outside tests
	Quiet    bool      // suppress console output (watch re-runs keep it on)
}

// Run executes one extraction pass. The only fatal condition is an
// unreadable input document; per-file write failures are collected into
// the summary and surfaced as a single batch error at the end.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()

	data, err := os.ReadFile(r.Input)
	if err != nil {
		return fmt.Errorf("reading input document: %w", err)
	}

	records := extract.Extract(string(data), r.Config.OutputDir)
	records = r.filterIgnored(records)

	rep := report.New(r.Input, r.Config.OutputDir)

	if len(records) == 0 {
		if !r.Quiet {
			ux.NothingFound(r.Input)
		}
		rep.Finish()
		r.saveReport(rep)
		return nil
	}

	if !r.Quiet {
		ux.RunHeader(r.Input, len(records))
	}

	skipExisting, err := r.resolveOverwrite(ctx, records)
	if err != nil {
		return err
	}

	sum := sink.WriteAll(records, skipExisting)

	if !r.Quiet {
		byPath := make(map[string]extract.FileRecord, len(records))
		for _, rec := range records {
			byPath[rec.ResolvedPath] = rec
		}
		for _, p := range sum.Written {
			ux.FileWritten(p, byPath[p].Language)
		}
		for _, p := range sum.Skipped {
			ux.FileSkipped(p)
		}
		for _, f := range sum.Failed {
			ux.FileFailed(f.Path, f.Err)
		}
		ux.RunSummary(sum, time.Since(start))
	}

	rep.Written = sum.Written
	rep.Skipped = sum.Skipped
	for _, f := range sum.Failed {
		rep.Failed = append(rep.Failed, report.FileFailure{Path: f.Path, Error: f.Err.Error()})
	}
	rep.Finish()
	r.saveReport(rep)

	if len(sum.Failed) > 0 {
		return fmt.Errorf("%d file(s) failed to write", len(sum.Failed))
	}
	return nil
}

// filterIgnored drops records whose output-relative path matches a
// configured ignore glob.
func (r *Runner) filterIgnored(records []extract.FileRecord) []extract.FileRecord {
	if len(r.Config.Ignore) == 0 {
		return records
	}
	kept := records[:0]
	for _, rec := range records {
		rel, err := filepath.Rel(r.Config.OutputDir, rec.ResolvedPath)
		if err != nil {
			kept = append(kept, rec)
			continue
		}
		if !matchesAny(r.Config.Ignore, filepath.ToSlash(rel)) {
			kept = append(kept, rec)
		}
	}
	return kept
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		// Patterns were validated at config load; Match only errors on a
		// bad pattern, so a non-match is the right fallback here.
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// resolveOverwrite turns the configured on-existing policy into a concrete
// skip-existing decision for this batch. The prompt policy asks once,
// globally, and only when something would actually be overwritten.
func (r *Runner) resolveOverwrite(ctx context.Context, records []extract.FileRecord) (bool, error) {
	switch r.Config.OnExisting {
	case config.OnExistingOverwrite:
		return false, nil
	case config.OnExistingSkip:
		return true, nil
	}

	existing := sink.Preflight(records)
	if len(existing) == 0 {
		return false, nil
	}

	fmt.Printf("\n  %s%d file(s) already exist:%s\n", ux.Yellow, len(existing), ux.Reset)
	for _, p := range existing {
		fmt.Printf("    %s\n", p)
	}
	fmt.Printf("\n  Overwrite them? [y to overwrite / anything else skips]: ")

	answer, err := readLine(ctx, r.stdin())
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return false, nil
	default:
		return true, nil
	}
}

func (r *Runner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

// readLine reads one line, abandoning the read if the context is cancelled
// (the goroutine stays blocked on stdin but the run unwinds cleanly).
func readLine(ctx context.Context, in io.Reader) (string, error) {
	type readResult struct {
		line string
		err  error
	}
	ch := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		ch <- readResult{line: strings.TrimSpace(line), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.err != nil && res.line == "" {
			return "", res.err
		}
		return res.line, nil
	}
}

func (r *Runner) saveReport(rep *report.Report) {
	if r.StateDir == "" {
		return
	}
	if err := rep.Save(r.StateDir); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save run report: %v\n", err)
	}
}
