package narrative

import (
	"context"
	"fmt"
	"strings"

	"github.com/kibbyd/htpa/go-engine/internal/burnout"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region interface

// Narrator renders engine output as user-facing prose.
type Narrator interface {
	NarrateDecision(ctx context.Context, d tradeoff.TradeOffDecision) (string, error)
	NarrateForecast(ctx context.Context, f burnout.Forecast) (string, error)
}

// #endregion interface

// #region heuristic

// Heuristic is a template narrator built entirely from the structured
// decision fields. It is the fallback when no language service is wired.
type Heuristic struct{}

// NewHeuristic returns the template narrator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// NarrateDecision composes a short plain-text account of today's plan.
func (h *Heuristic) NarrateDecision(_ context.Context, d tradeoff.TradeOffDecision) (string, error) {
	var b strings.Builder

	if len(d.ConstraintsActive) == 0 {
		b.WriteString("No constraints are active today. ")
	} else {
		names := make([]string, len(d.ConstraintsActive))
		for i, c := range d.ConstraintsActive {
			names[i] = string(c)
		}
		fmt.Fprintf(&b, "Active constraints: %s. ", strings.Join(names, ", "))
	}

	b.WriteString(d.ReasoningSummary)

	for _, dd := range d.Decisions {
		switch dd.Action {
		case tradeoff.ActionSkip:
			fmt.Fprintf(&b, " %s is skipped: %s.", titleCase(string(dd.Category)), dd.Reasoning)
		case tradeoff.ActionDowngrade:
			if dd.AdjustedTask != nil {
				fmt.Fprintf(&b, " %s is scaled back to %q (%d min).",
					titleCase(string(dd.Category)), dd.AdjustedTask.Name, dd.AdjustedTask.DurationMinutes)
			}
		case tradeoff.ActionPrioritize:
			fmt.Fprintf(&b, " %s comes first today.", titleCase(string(dd.Category)))
		}
	}

	fmt.Fprintf(&b, " Confidence: %.0f%%.", d.ConfidenceScore*100)
	return b.String(), nil
}

// NarrateForecast composes a short plain-text account of burnout risk.
func (h *Heuristic) NarrateForecast(_ context.Context, f burnout.Forecast) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Burnout risk is %s (%d/100).", f.Severity, f.RiskScore)
	if len(f.PrimaryFactors) > 0 {
		fmt.Fprintf(&b, " Driving factors: %s.", strings.Join(f.PrimaryFactors, "; "))
	}
	if f.DaysToCrisis != nil {
		fmt.Fprintf(&b, " Without intervention, crisis projected within %d day(s).", *f.DaysToCrisis)
	}
	if f.InterventionNeeded {
		b.WriteString(" Intervention recommended: prioritize recovery and sleep.")
	}
	return b.String(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// #endregion heuristic

// #region fallback

// WithFallback chains two narrators: the secondary answers whenever the
// primary errors.
type WithFallback struct {
	Primary   Narrator
	Secondary Narrator
}

// NarrateDecision tries the primary narrator and falls back on error.
func (w *WithFallback) NarrateDecision(ctx context.Context, d tradeoff.TradeOffDecision) (string, error) {
	text, err := w.Primary.NarrateDecision(ctx, d)
	if err != nil {
		return w.Secondary.NarrateDecision(ctx, d)
	}
	return text, nil
}

// NarrateForecast tries the primary narrator and falls back on error.
func (w *WithFallback) NarrateForecast(ctx context.Context, f burnout.Forecast) (string, error) {
	text, err := w.Primary.NarrateForecast(ctx, f)
	if err != nil {
		return w.Secondary.NarrateForecast(ctx, f)
	}
	return text, nil
}

// #endregion fallback
