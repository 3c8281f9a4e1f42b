package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kibbyd/htpa/go-engine/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to JSON fixture file")
	jsonOut := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--json]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(1)
	}

	config := replay.DefaultReplayConfig()
	results := replay.Replay(fixture, config)
	summary := replay.Summarize(results, config)

	if *jsonOut {
		out := struct {
			Description string               `json:"description"`
			Results     []replay.DayResult   `json:"results"`
			Summary     replay.ReplaySummary `json:"summary"`
		}{fixture.Description, results, summary}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	} else {
		printResults(fixture.Description, results, summary)
	}

	// Nonzero exit when the engine diverged from fixture expectations.
	if summary.Mismatches > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region output

func printResults(description string, results []replay.DayResult, summary replay.ReplaySummary) {
	fmt.Printf("Replay: %s\n\n", description)
	fmt.Printf("%-4s  %-10s  %4s  %5s  %-8s\n", "Day", "Decision", "Cons", "Conf", "Status")
	for _, r := range results {
		status := "ok"
		if len(r.Mismatches) > 0 {
			status = "MISMATCH"
		}
		fmt.Printf("%-4d  %-10s  %4d  %5.2f  %-8s\n",
			r.Day, r.Decision.DecisionID, len(r.Decision.ConstraintsActive), r.Decision.ConfidenceScore, status)
		for _, m := range r.Mismatches {
			fmt.Printf("      %s: expected %s, got %s\n", m.Category, m.Expected, m.Actual)
		}
		for _, rec := range r.Adaptations {
			fmt.Printf("      adapt: %s (%s)\n", rec.AdaptationMade, rec.PatternDetected)
		}
	}

	fmt.Printf("\nDays: %d  Mismatched days: %d  Mismatches: %d\n",
		summary.TotalDays, summary.MismatchDays, summary.Mismatches)
	fmt.Printf("Final burnout risk: %d/100 (%s)\n",
		summary.FinalForecast.RiskScore, summary.FinalForecast.Severity)
	if summary.FinalReport.Status != "" {
		fmt.Printf("Weekly report status: %s\n", summary.FinalReport.Status)
	}
}

// #endregion output
