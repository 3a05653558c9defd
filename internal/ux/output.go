package ux

import (
	"fmt"
	"time"

	"github.com/jorge-barreto/carve/internal/sink"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// RunHeader prints a timestamped header for one extraction pass.
func RunHeader(input string, count int) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %s%s → %d file(s)%s\n",
		Dim, timestamp(), Reset, Bold, input, count, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// FileWritten prints a per-file success line.
func FileWritten(path, language string) {
	fmt.Printf("  %s✓%s %s %s(%s)%s\n", Green, Reset, path, Dim, language, Reset)
}

// FileSkipped prints a per-file skip line (file already existed).
func FileSkipped(path string) {
	fmt.Printf("  %s–%s %s %s(exists, skipped)%s\n", Dim, Reset, path, Dim, Reset)
}

// FileFailed prints a per-file failure line.
func FileFailed(path string, err error) {
	fmt.Printf("  %s✗%s %s: %v\n", Red, Reset, path, err)
}

// NothingFound reports a run that extracted zero fragments. Distinct from
// failure: the document simply contained nothing to materialize.
func NothingFound(input string) {
	fmt.Printf("\n%s[%s]%s  %sNothing found in %s: no path-annotated code blocks%s\n",
		Dim, timestamp(), Reset, Yellow, input, Reset)
}

// RunSummary prints the end-of-run batch summary, including any collected
// per-file errors.
func RunSummary(sum sink.Summary, elapsed time.Duration) {
	fmt.Printf("\n%s[%s]%s  %s%d written, %d skipped, %d failed (%dms)%s\n",
		Dim, timestamp(), Reset, Bold,
		len(sum.Written), len(sum.Skipped), len(sum.Failed),
		elapsed.Milliseconds(), Reset)
	for _, f := range sum.Failed {
		fmt.Printf("  %s✗ %s%s: %v\n", Red, f.Path, Reset, f.Err)
	}
}

// WatchStarted announces the watch loop.
func WatchStarted(input string) {
	fmt.Printf("%s[%s]%s  %sWatching %s; extraction re-runs on change (ctrl-c to stop)%s\n",
		Dim, timestamp(), Reset, Cyan, input, Reset)
}

// WatchTriggered announces a re-extraction triggered by a document change.
func WatchTriggered(input string) {
	fmt.Printf("\n%s[%s]%s  %s↺ %s changed, re-extracting%s\n",
		Dim, timestamp(), Reset, Yellow, input, Reset)
}
