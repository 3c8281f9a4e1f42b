package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kibbyd/htpa/go-engine/internal/burnout"
	"github.com/kibbyd/htpa/go-engine/internal/constraint"
	"github.com/kibbyd/htpa/go-engine/internal/council"
	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/history"
	"github.com/kibbyd/htpa/go-engine/internal/logging"
	"github.com/kibbyd/htpa/go-engine/internal/narrative"
	"github.com/kibbyd/htpa/go-engine/internal/pattern"
	"github.com/kibbyd/htpa/go-engine/internal/profile"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region main
func main() {
	dbPath := envOr("HTPA_DB", "htpa.db")
	narrativeAddr := os.Getenv("NARRATIVE_ADDR")

	store, err := history.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	// Ensure a profile exists
	prof, ok, err := store.Profile()
	if err != nil {
		log.Fatalf("failed to read profile: %v", err)
	}
	if !ok {
		log.Println("[ENGINE] No profile found, creating default profile...")
		prof = profile.Default("local", "Local User")
		if err := store.SetProfile(prof); err != nil {
			log.Fatalf("failed to save profile: %v", err)
		}
	}

	// Optional narrative service; template narration when unset or down
	var narrator narrative.Narrator = narrative.NewHeuristic()
	if narrativeAddr != "" {
		client, err := narrative.NewClient(narrativeAddr)
		if err != nil {
			log.Printf("[ENGINE] narrative service unavailable, using templates: %v", err)
		} else {
			defer client.Close()
			narrator = &narrative.WithFallback{Primary: client, Secondary: narrative.NewHeuristic()}
		}
	}

	engine := tradeoff.NewEngine(&prof.Preferences)
	thresholds := constraint.DefaultThresholds()
	adjuster := pattern.NewAdjuster(pattern.DefaultAdjusterConfig())
	healthCouncil := council.New()

	fmt.Println("Health Trade-off Engine ready.")
	fmt.Printf("  DB: %s | User: %s | Goal: %s\n", dbPath, prof.Name, prof.Goal)
	fmt.Println("Commands:")
	fmt.Println("  plan <sleep_h> <quality 0-100> <energy 1-10> <stress low|medium|high> <time_h>")
	fmt.Println("  council <activity>")
	fmt.Println("  forecast | report | history | quit")

	scanner := bufio.NewScanner(os.Stdin)
	var lastState *health.StateSnapshot

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "quit", "exit":
			return

		case "plan":
			state, err := parsePlanArgs(fields[1:])
			if err != nil {
				log.Printf("usage: plan <sleep_h> <quality> <energy> <stress> <time_h>: %v", err)
				continue
			}
			lastState = &state
			runPlan(store, engine, adjuster, narrator, thresholds, state)

		case "council":
			if len(fields) < 2 {
				log.Println("usage: council <activity>")
				continue
			}
			if lastState == nil {
				log.Println("no state yet, run 'plan' first")
				continue
			}
			activity := strings.Join(fields[1:], " ")
			runCouncil(store, healthCouncil, *lastState, activity, prof.Goal)

		case "forecast":
			runForecast(store, narrator)

		case "report":
			runReport(store, adjuster)

		case "history":
			runHistory(store)

		default:
			log.Printf("unknown command %q", cmd)
		}
	}
}

// #endregion main

// #region commands

func runPlan(
	store *history.Store,
	engine *tradeoff.Engine,
	adjuster *pattern.Adjuster,
	narrator narrative.Narrator,
	thresholds constraint.Thresholds,
	state health.StateSnapshot,
) {
	constraints := constraint.Evaluate(state, thresholds)
	decision := engine.Decide(state, constraints, defaultPlan())

	if err := store.AppendDecision(decision); err != nil {
		log.Printf("persist error: %v", err)
	}

	// Log provenance
	stateJSON, _ := json.Marshal(state)
	names := make([]string, len(decision.ConstraintsActive))
	for i, c := range decision.ConstraintsActive {
		names[i] = string(c)
	}
	err := logging.LogDecision(store.DB(), logging.ProvenanceEntry{
		DecisionID:  decision.DecisionID,
		TriggerType: "interactive",
		StateJSON:   string(stateJSON),
		Constraints: strings.Join(names, ","),
		Summary:     decision.ReasoningSummary,
		Confidence:  decision.ConfidenceScore,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("logging error: %v", err)
	}

	past, err := store.Decisions(0)
	if err != nil {
		log.Printf("history error: %v", err)
	}
	_, adaptations := adjuster.AdjustFuturePlan(decision, defaultPlan(), past)
	for _, rec := range adaptations {
		if err := store.AppendAdaptation(rec); err != nil {
			log.Printf("persist error: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	text, err := narrator.NarrateDecision(ctx, decision)
	cancel()
	if err != nil {
		log.Printf("narration error: %v", err)
		text = decision.ReasoningSummary
	}

	fmt.Printf("\n%s\n\n", text)
	for _, dd := range decision.Decisions {
		fmt.Printf("  %-12s %-11s %s\n", dd.Category, dd.Action, dd.Reasoning)
	}
	for _, rec := range adaptations {
		fmt.Printf("  [ADAPT] %s: %s\n", rec.PatternDetected, rec.AdaptationMade)
	}
	fmt.Printf("[%s] constraints=%d confidence=%.2f\n",
		decision.DecisionID, len(decision.ConstraintsActive), decision.ConfidenceScore)
}

func runCouncil(
	store *history.Store,
	c *council.Council,
	state health.StateSnapshot,
	activity, goal string,
) {
	past, err := store.Decisions(0)
	if err != nil {
		log.Printf("history error: %v", err)
	}
	verdict := c.Deliberate(state, activity, goal, past)

	fmt.Printf("\nCouncil verdict: %s (consensus %.0f%%)\n", verdict.FinalAction, verdict.ConsensusLevel*100)
	for _, vote := range verdict.AgentVotes {
		fmt.Printf("  %-18s %-7s %.2f  %s\n", vote.Role, vote.Action, vote.Confidence, vote.Reasoning)
	}
	for _, dissent := range verdict.DissentingOpinions {
		fmt.Printf("  dissent: %s\n", dissent)
	}
}

func runForecast(store *history.Store, narrator narrative.Narrator) {
	past, err := store.Decisions(0)
	if err != nil {
		log.Printf("history error: %v", err)
		return
	}
	forecast := burnout.Predict(past)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	text, err := narrator.NarrateForecast(ctx, forecast)
	cancel()
	if err != nil {
		text = fmt.Sprintf("Burnout risk %d/100 (%s)", forecast.RiskScore, forecast.Severity)
	}
	fmt.Printf("\n%s\n", text)
}

func runReport(store *history.Store, adjuster *pattern.Adjuster) {
	past, err := store.Decisions(0)
	if err != nil {
		log.Printf("history error: %v", err)
		return
	}
	report := adjuster.WeeklyReport(past)
	if report.Status == pattern.StatusInsufficientData {
		fmt.Println("\nNot enough history for a weekly report yet.")
		return
	}
	fmt.Printf("\nWeekly report (%d decisions):\n", report.TotalDecisions)
	for cat, stats := range report.Categories {
		fmt.Printf("  %-12s skip %.0f%%  downgrade %.0f%%\n", cat, stats.SkipRate, stats.DowngradeRate)
	}
	for _, rec := range report.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

func runHistory(store *history.Store) {
	past, err := store.Decisions(10)
	if err != nil {
		log.Printf("history error: %v", err)
		return
	}
	for _, d := range past {
		fmt.Printf("  %s  %s  conf=%.2f  %s\n",
			d.DecisionID, d.Timestamp.Format("2006-01-02 15:04"), d.ConfidenceScore, d.ReasoningSummary)
	}
}

// #endregion commands

// #region helpers

func parsePlanArgs(args []string) (health.StateSnapshot, error) {
	if len(args) != 5 {
		return health.StateSnapshot{}, fmt.Errorf("want 5 args, got %d", len(args))
	}
	sleep, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return health.StateSnapshot{}, fmt.Errorf("sleep_h: %w", err)
	}
	quality, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return health.StateSnapshot{}, fmt.Errorf("quality: %w", err)
	}
	energy, err := strconv.Atoi(args[2])
	if err != nil {
		return health.StateSnapshot{}, fmt.Errorf("energy: %w", err)
	}
	stress := health.StressLevel(args[3])
	switch stress {
	case health.StressLow, health.StressMedium, health.StressHigh:
	default:
		return health.StateSnapshot{}, fmt.Errorf("stress must be low, medium or high")
	}
	timeAvail, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return health.StateSnapshot{}, fmt.Errorf("time_h: %w", err)
	}

	return health.StateSnapshot{
		Timestamp:          time.Now().UTC(),
		SleepHours:         sleep,
		SleepQuality:       quality,
		EnergyLevel:        energy,
		StressLevel:        stress,
		TimeAvailableHours: timeAvail,
	}, nil
}

func defaultPlan() []health.PlannedTask {
	return []health.PlannedTask{
		{Name: "Morning run", Category: health.CategoryFitness, DurationMinutes: 45, Intensity: 0.7},
		{Name: "Meal prep", Category: health.CategoryNutrition, DurationMinutes: 30, Intensity: 0.3},
		{Name: "Evening wind-down", Category: health.CategoryRecovery, DurationMinutes: 30, Intensity: 0.2},
		{Name: "Meditation", Category: health.CategoryMindfulness, DurationMinutes: 15, Intensity: 0.2},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
