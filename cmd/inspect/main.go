package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kibbyd/htpa/go-engine/internal/burnout"
	"github.com/kibbyd/htpa/go-engine/internal/history"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to htpa.db")
	last := flag.Int("last", 20, "show N most recent decisions")
	id := flag.String("id", "", "show single decision detail")
	adaptations := flag.Bool("adaptations", false, "list adaptation records instead of decisions")
	forecast := flag.Bool("forecast", false, "print burnout forecast over stored history")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/htpa.db [--last N] [--id decision_id] [--adaptations] [--forecast] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *id != "":
		err = runDetailMode(store, *id, *jsonOut)
	case *adaptations:
		err = runAdaptationsMode(store, *last, *jsonOut)
	case *forecast:
		err = runForecastMode(store, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	DecisionID  string  `json:"decision_id"`
	Time        string  `json:"time"`
	Constraints int     `json:"constraints"`
	Skips       int     `json:"skips"`
	Downgrades  int     `json:"downgrades"`
	Confidence  float64 `json:"confidence"`
	Summary     string  `json:"summary"`
}

func runListMode(store *history.Store, last int, jsonOut bool) error {
	decisions, err := store.Decisions(last)
	if err != nil {
		return err
	}
	if len(decisions) == 0 {
		fmt.Fprintln(os.Stderr, "no decisions found")
		return nil
	}

	rows := make([]listRow, len(decisions))
	for i, d := range decisions {
		skips, downgrades := 0, 0
		for _, dd := range d.Decisions {
			switch dd.Action {
			case tradeoff.ActionSkip:
				skips++
			case tradeoff.ActionDowngrade:
				downgrades++
			}
		}
		rows[i] = listRow{
			DecisionID:  d.DecisionID,
			Time:        d.Timestamp.Format("2006-01-02T15:04:05Z"),
			Constraints: len(d.ConstraintsActive),
			Skips:       skips,
			Downgrades:  downgrades,
			Confidence:  d.ConfidenceScore,
			Summary:     d.ReasoningSummary,
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	fmt.Printf("%-10s  %-20s  %4s  %5s  %5s  %5s  %s\n",
		"Decision", "Time", "Cons", "Skip", "Down", "Conf", "Summary")
	for _, r := range rows {
		fmt.Printf("%-10s  %-20s  %4d  %5d  %5d  %5.2f  %s\n",
			r.DecisionID, r.Time, r.Constraints, r.Skips, r.Downgrades, r.Confidence, r.Summary)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *history.Store, id string, jsonOut bool) error {
	d, err := store.Decision(id)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(d)
	}

	fmt.Printf("Decision %s at %s\n", d.DecisionID, d.Timestamp.Format("2006-01-02T15:04:05Z"))
	fmt.Printf("  sleep=%.1fh energy=%d stress=%s time=%.1fh\n",
		d.State.SleepHours, d.State.EnergyLevel, d.State.StressLevel, d.State.TimeAvailableHours)
	fmt.Printf("  constraints:")
	for _, c := range d.ConstraintsActive {
		fmt.Printf(" %s", c)
	}
	fmt.Println()
	for _, dd := range d.Decisions {
		fmt.Printf("  %-12s %-11s prio=%.3f  %s\n", dd.Category, dd.Action, dd.PriorityScore, dd.Reasoning)
		if dd.AdjustedTask != nil {
			fmt.Printf("               -> %q %dmin intensity=%.2f\n",
				dd.AdjustedTask.Name, dd.AdjustedTask.DurationMinutes, dd.AdjustedTask.Intensity)
		}
	}
	for _, fi := range d.FutureImpacts {
		fmt.Printf("  impact: %s (%dd) %s\n", fi.AdjustmentType, fi.DaysAffected, fi.Description)
	}
	fmt.Printf("  confidence=%.2f\n  %s\n", d.ConfidenceScore, d.ReasoningSummary)
	return nil
}

// #endregion detail-mode

// #region adaptations-mode

func runAdaptationsMode(store *history.Store, last int, jsonOut bool) error {
	records, err := store.Adaptations(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no adaptations found")
		return nil
	}
	if jsonOut {
		return printJSON(records)
	}
	for _, rec := range records {
		fmt.Printf("%-10s  %-20s  %-24s  %s\n",
			rec.ID, rec.Timestamp.Format("2006-01-02T15:04:05Z"), rec.PatternDetected, rec.AdaptationMade)
	}
	return nil
}

// #endregion adaptations-mode

// #region forecast-mode

func runForecastMode(store *history.Store, jsonOut bool) error {
	decisions, err := store.Decisions(0)
	if err != nil {
		return err
	}
	f := burnout.Predict(decisions)
	if jsonOut {
		return printJSON(f)
	}
	fmt.Printf("Burnout risk: %d/100 (%s)\n", f.RiskScore, f.Severity)
	for _, factor := range f.PrimaryFactors {
		fmt.Printf("  factor: %s\n", factor)
	}
	if f.DaysToCrisis != nil {
		fmt.Printf("  projected crisis in %d day(s)\n", *f.DaysToCrisis)
	}
	if f.InterventionNeeded {
		fmt.Println("  intervention needed")
	}
	return nil
}

// #endregion forecast-mode

// #region helpers

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
