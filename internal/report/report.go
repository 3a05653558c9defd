// Package report persists a JSON record of each extraction run so results
// can be inspected after the fact with 'carve report'.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jorge-barreto/carve/internal/sink"
)

// Run outcomes.
const (
	OutcomeWritten      = "written"
	OutcomeNothingFound = "nothing-found"
	OutcomePartial      = "partial" // some files written, some failed
	OutcomeFailed       = "failed"  // every attempted write failed
)

// FileFailure is one failed write, kept as plain strings so the report
// round-trips through JSON.
type FileFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type Report struct {
	RunID      string        `json:"run_id"`
	Input      string        `json:"input"`
	OutputDir  string        `json:"output_dir"`
	Outcome    string        `json:"outcome"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Written    []string      `json:"written"`
	Skipped    []string      `json:"skipped"`
	Failed     []FileFailure `json:"failed"`
}

// New creates a report for a run starting now, with a fresh run ID.
func New(input, outputDir string) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Input:     input,
		OutputDir: outputDir,
		StartedAt: time.Now().UTC(),
	}
}

// Finish stamps the end time and derives the outcome from the result lists.
func (r *Report) Finish() {
	r.FinishedAt = time.Now().UTC()
	switch {
	case len(r.Written) == 0 && len(r.Skipped) == 0 && len(r.Failed) == 0:
		r.Outcome = OutcomeNothingFound
	case len(r.Failed) == 0:
		r.Outcome = OutcomeWritten
	case len(r.Written) == 0:
		r.Outcome = OutcomeFailed
	default:
		r.Outcome = OutcomePartial
	}
}

// Dir returns the reports directory under the given state directory.
func Dir(stateDir string) string {
	return filepath.Join(stateDir, "reports")
}

// Save writes the report to <stateDir>/reports/<run-id>.json and refreshes
// latest.json to point at the same content.
func (r *Report) Save(stateDir string) error {
	dir := Dir(stateDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	if err := sink.WriteFileAtomic(filepath.Join(dir, r.RunID+".json"), data, 0644); err != nil {
		return err
	}
	return sink.WriteFileAtomic(filepath.Join(dir, "latest.json"), data, 0644)
}

// LoadLatest reads the most recent run's report. Returns nil without error
// when no run has been recorded yet.
func LoadLatest(stateDir string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(Dir(stateDir), "latest.json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
