package ux

import (
	"fmt"

	"github.com/jorge-barreto/carve/internal/report"
)

// RenderReport prints the full display for a saved run report.
func RenderReport(r *report.Report) {
	fmt.Printf("%sRun:%s      %s\n", Bold, Reset, r.RunID)
	fmt.Printf("%sInput:%s    %s\n", Bold, Reset, r.Input)
	fmt.Printf("%sOutput:%s   %s\n", Bold, Reset, r.OutputDir)

	switch r.Outcome {
	case report.OutcomeWritten:
		fmt.Printf("%sOutcome:%s  %s%s%s%s\n", Bold, Reset, Green, Bold, r.Outcome, Reset)
	case report.OutcomeNothingFound:
		fmt.Printf("%sOutcome:%s  %s%s%s\n", Bold, Reset, Yellow, r.Outcome, Reset)
	default:
		fmt.Printf("%sOutcome:%s  %s%s%s\n", Bold, Reset, Red, r.Outcome, Reset)
	}

	elapsed := r.FinishedAt.Sub(r.StartedAt)
	fmt.Printf("%sWhen:%s     %s (%dms)\n",
		Bold, Reset, r.StartedAt.Local().Format("2006-01-02 15:04:05"), elapsed.Milliseconds())

	if len(r.Written) > 0 {
		fmt.Printf("\n%sWritten:%s\n", Bold, Reset)
		for _, p := range r.Written {
			fmt.Printf("  %s✓%s %s\n", Green, Reset, p)
		}
	}
	if len(r.Skipped) > 0 {
		fmt.Printf("\n%sSkipped:%s\n", Bold, Reset)
		for _, p := range r.Skipped {
			fmt.Printf("  %s–%s %s\n", Dim, Reset, p)
		}
	}
	if len(r.Failed) > 0 {
		fmt.Printf("\n%sFailed:%s\n", Bold, Reset)
		for _, f := range r.Failed {
			fmt.Printf("  %s✗%s %s: %s\n", Red, Reset, f.Path, f.Error)
		}
	}
	fmt.Println()
}
