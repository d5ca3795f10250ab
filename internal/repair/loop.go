// Package repair runs the bounded auto-repair loop over an assembled document.
package repair

import (
	"log"

	"github.com/jonathan/brand-styleguide/internal/quality"
	"github.com/jonathan/brand-styleguide/internal/types"
)

// Loop defaults
const (
	DefaultMaxAttempts = 2
	DefaultThreshold   = 80
)

// Options configures RunRepairLoop
type Options struct {
	Quality     quality.Options
	MaxAttempts int
	Threshold   int
	Verbose     bool
}

// Result is the repaired document with its final report and the loop history
type Result struct {
	Document     string
	Report       *types.QualityReport
	Attempts     int
	ScoreHistory []int
	Patches      []string
}

// RunRepairLoop applies at most one structural patch per attempt while the
// score is below the threshold, re-scoring the whole document after each.
// It stops early when the threshold is met or no patch applies.
func RunRepairLoop(doc string, opts Options) *Result {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}

	report := quality.Validate(doc, opts.Quality)
	res := &Result{Document: doc, Report: report, ScoreHistory: []int{report.Score}}

	for res.Attempts < opts.MaxAttempts && res.Report.Score < opts.Threshold {
		patched, name, ok := nextPatch(res.Document, res.Report)
		if !ok {
			if opts.Verbose {
				log.Printf("[REPAIR] score %d below %d but no patch applies", res.Report.Score, opts.Threshold)
			}
			break
		}

		res.Attempts++
		res.Document = patched
		res.Patches = append(res.Patches, name)
		res.Report = quality.Validate(patched, opts.Quality)
		res.ScoreHistory = append(res.ScoreHistory, res.Report.Score)

		if opts.Verbose {
			log.Printf("[REPAIR] attempt %d applied %s: score %d", res.Attempts, name, res.Report.Score)
		}
	}
	return res
}

// nextPatch picks the highest-leverage fix for the current report. Empty
// sections are only filled once they cost points.
func nextPatch(doc string, report *types.QualityReport) (string, string, bool) {
	if !report.Structural.TagBalance.Balanced {
		if patched, ok := balanceTags(doc); ok {
			return patched, PatchTagBalance, true
		}
	}
	if len(report.Structural.EmptySections) > quality.MaxEmptySections {
		if patched, n := fillEmptySections(doc); n > 0 {
			return patched, PatchEmptySections, true
		}
	}
	return doc, "", false
}
