package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/burnout"
	"github.com/kibbyd/htpa/go-engine/internal/constraint"
	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/history"
	"github.com/kibbyd/htpa/go-engine/internal/logging"
	"github.com/kibbyd/htpa/go-engine/internal/pattern"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
	"github.com/kibbyd/htpa/go-engine/internal/wearable"
)

// #region main

func main() {
	scenario := flag.String("scenario", "normal", "synthetic scenario: normal|burnout|recovery|high_stress|weekend_warrior")
	days := flag.Int("days", 14, "number of days to simulate")
	seed := flag.Int64("seed", 42, "random seed for the generator")
	csvPath := flag.String("csv", "", "load wearable samples from CSV instead of generating")
	dbPath := flag.String("db", "", "optionally persist decisions to this SQLite db")
	timeAvail := flag.Float64("time", 2.0, "daily time available in hours")
	flag.Parse()

	var samples []wearable.Sample
	var err error
	if *csvPath != "" {
		samples, err = wearable.LoadCSV(*csvPath)
	} else {
		samples, err = wearable.Generate(wearable.Scenario(*scenario), *days, *seed, time.Now().UTC())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load samples: %v\n", err)
		os.Exit(1)
	}
	if len(samples) == 0 {
		fmt.Fprintln(os.Stderr, "no samples to simulate")
		os.Exit(1)
	}

	var store *history.Store
	if *dbPath != "" {
		store, err = history.NewStore(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open db: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	prof := profile.Default("sim", "Simulated User")
	engine := tradeoff.NewEngine(&prof.Preferences)
	thresholds := constraint.DefaultThresholds()
	adjuster := pattern.NewAdjuster(pattern.DefaultAdjusterConfig())

	fmt.Printf("Simulating %d days (%s)\n\n", len(samples), *scenario)
	fmt.Printf("%-12s  %-6s  %-6s  %-8s  %4s  %5s  %s\n",
		"Date", "Sleep", "Energy", "Stress", "Cons", "Conf", "Fitness action")

	var decisions []tradeoff.TradeOffDecision
	plan := defaultPlan()

	for i, sample := range samples {
		snapshot := wearable.Snapshot(sample, samples[:i+1], prof, *timeAvail)
		constraints := constraint.Evaluate(snapshot, thresholds)
		decision := engine.Decide(snapshot, constraints, plan)
		decisions = append(decisions, decision)

		if store != nil {
			if err := store.AppendDecision(decision); err != nil {
				log.Printf("persist error: %v", err)
			}
			stateJSON, _ := json.Marshal(snapshot)
			names := make([]string, len(decision.ConstraintsActive))
			for j, c := range decision.ConstraintsActive {
				names[j] = string(c)
			}
			err := logging.LogDecision(store.DB(), logging.ProvenanceEntry{
				DecisionID:  decision.DecisionID,
				TriggerType: "simulation",
				StateJSON:   string(stateJSON),
				Constraints: strings.Join(names, ","),
				Summary:     decision.ReasoningSummary,
				Confidence:  decision.ConfidenceScore,
				CreatedAt:   time.Now().UTC(),
			})
			if err != nil {
				log.Printf("logging error: %v", err)
			}
		}

		fitnessAction := "-"
		if dd := decision.Get(health.CategoryFitness); dd != nil {
			fitnessAction = string(dd.Action)
		}
		fmt.Printf("%-12s  %-6.1f  %-6d  %-8s  %4d  %5.2f  %s\n",
			sample.Date.Format("2006-01-02"), sample.SleepHours, snapshot.EnergyLevel,
			snapshot.StressLevel, len(decision.ConstraintsActive), decision.ConfidenceScore, fitnessAction)

		// Carry plan adjustments into the next day
		adjusted, adaptations := adjuster.AdjustFuturePlan(decision, defaultPlan(), decisions)
		plan = adjusted
		for _, rec := range adaptations {
			fmt.Printf("              adapt: %s (%s)\n", rec.AdaptationMade, rec.PatternDetected)
			if store != nil {
				if err := store.AppendAdaptation(rec); err != nil {
					log.Printf("persist error: %v", err)
				}
			}
		}
	}

	forecast := burnout.Predict(decisions)
	fmt.Printf("\nBurnout risk: %d/100 (%s)\n", forecast.RiskScore, forecast.Severity)
	for _, factor := range forecast.PrimaryFactors {
		fmt.Printf("  factor: %s\n", factor)
	}
	if forecast.DaysToCrisis != nil {
		fmt.Printf("  projected crisis in %d day(s)\n", *forecast.DaysToCrisis)
	}

	report := adjuster.WeeklyReport(decisions)
	if report.Status == pattern.StatusOK {
		fmt.Printf("\nWeekly report (%d decisions):\n", report.TotalDecisions)
		for cat, stats := range report.Categories {
			fmt.Printf("  %-12s skip %.0f%%  downgrade %.0f%%\n", cat, stats.SkipRate, stats.DowngradeRate)
		}
		for _, rec := range report.Recommendations {
			fmt.Printf("  - %s\n", rec)
		}
	}
}

// #endregion main

// #region helpers

func defaultPlan() []health.PlannedTask {
	return []health.PlannedTask{
		{Name: "Morning run", Category: health.CategoryFitness, DurationMinutes: 45, Intensity: 0.7},
		{Name: "Meal prep", Category: health.CategoryNutrition, DurationMinutes: 30, Intensity: 0.3},
		{Name: "Evening wind-down", Category: health.CategoryRecovery, DurationMinutes: 30, Intensity: 0.2},
		{Name: "Meditation", Category: health.CategoryMindfulness, DurationMinutes: 15, Intensity: 0.2},
	}
}

// #endregion helpers
