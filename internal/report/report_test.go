package report

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFinish_Outcomes(t *testing.T) {
	cases := []struct {
		name    string
		written []string
		skipped []string
		failed  []FileFailure
		want    string
	}{
		{"nothing", nil, nil, nil, OutcomeNothingFound},
		{"all written", []string{"a"}, nil, nil, OutcomeWritten},
		{"skips only", nil, []string{"a"}, nil, OutcomeWritten},
		{"partial", []string{"a"}, nil, []FileFailure{{Path: "b", Error: "denied"}}, OutcomePartial},
		{"all failed", nil, nil, []FileFailure{{Path: "b", Error: "denied"}}, OutcomeFailed},
	}
	for _, c := range cases {
		r := New("in.md", "out")
		r.Written, r.Skipped, r.Failed = c.written, c.skipped, c.failed
		r.Finish()
		if r.Outcome != c.want {
			t.Fatalf("%s: outcome = %q, want %q", c.name, r.Outcome, c.want)
		}
		if r.FinishedAt.IsZero() {
			t.Fatalf("%s: FinishedAt not stamped", c.name)
		}
	}
}

func TestSaveAndLoadLatest(t *testing.T) {
	stateDir := t.TempDir()

	r := New("transcript.md", "out")
	r.Written = []string{"out/a.ts"}
	r.Finish()
	if err := r.Save(stateDir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(Dir(stateDir), r.RunID+".json")); err != nil {
		t.Fatalf("per-run report not written: %v", err)
	}

	loaded, err := LoadLatest(stateDir)
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if loaded == nil || loaded.RunID != r.RunID {
		t.Fatalf("unexpected latest report %+v", loaded)
	}
	if loaded.Outcome != OutcomeWritten {
		t.Fatalf("unexpected outcome %q", loaded.Outcome)
	}
}

func TestLoadLatest_NoRuns(t *testing.T) {
	r, err := LoadLatest(t.TempDir())
	if err != nil {
		t.Fatalf("LoadLatest failed: %v", err)
	}
	if r != nil {
		t.Fatalf("expected nil report, got %+v", r)
	}
}

func TestNew_FreshRunIDs(t *testing.T) {
	a, b := New("x", "y"), New("x", "y")
	if a.RunID == "" || a.RunID == b.RunID {
		t.Fatalf("expected distinct run IDs, got %q and %q", a.RunID, b.RunID)
	}
}
