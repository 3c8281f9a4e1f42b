package council

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kibbyd/htpa/go-engine/internal/health"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region council

// Council runs four independent heuristic agents over the same input and
// reaches a weighted-majority consensus on one proposed activity.
type Council struct {
	// agents are evaluated concurrently; their declared order here is the
	// deterministic tie-break order when summed confidences tie exactly.
	agents []agent
}

// New creates a council with the four fixed seats.
func New() *Council {
	return &Council{
		agents: []agent{
			sleepSpecialist{},
			performanceCoach{},
			wellnessGuardian{},
			futureSelf{},
		},
	}
}

// #endregion

// #region deliberate

// Deliberate gathers every agent's recommendation in parallel and aggregates
// them into a ConsensusDecision. Agent execution order never affects the
// result: votes are collected into fixed slots and aggregated in declared
// order.
func (c *Council) Deliberate(state health.StateSnapshot, activity, goal string, history []tradeoff.TradeOffDecision) ConsensusDecision {
	in := Input{State: state, Activity: activity, Goal: goal, History: history}

	votes := make([]Recommendation, len(c.agents))
	var wg sync.WaitGroup
	for i, a := range c.agents {
		wg.Add(1)
		go func(i int, a agent) {
			defer wg.Done()
			votes[i] = a.Recommend(in)
		}(i, a)
	}
	wg.Wait()

	return aggregate(votes)
}

// #endregion

// #region aggregate

// aggregate sums confidence per action; the largest sum wins, with exact
// ties broken by the first-seen action in vote order.
func aggregate(votes []Recommendation) ConsensusDecision {
	sums := make(map[Action]float64)
	var seen []Action
	for _, v := range votes {
		v.Confidence = health.Clamp01(v.Confidence)
		if _, ok := sums[v.Action]; !ok {
			seen = append(seen, v.Action)
		}
		sums[v.Action] += v.Confidence
	}

	var (
		final Action
		best  float64
		total float64
	)
	for i, a := range seen {
		total += sums[a]
		if i == 0 || sums[a] > best {
			final = a
			best = sums[a]
		}
	}

	consensus := 0.0
	if total > 0 {
		consensus = best / total
	}

	var dissenting []string
	var majority []string
	for _, v := range votes {
		if v.Action != final {
			dissenting = append(dissenting, fmt.Sprintf("%s: %s", v.Role, v.Reasoning))
		} else {
			majority = append(majority, fmt.Sprintf("- %s: %s", v.Role, v.Reasoning))
		}
	}

	summary := fmt.Sprintf("Council decision (%.0f%% consensus): %s", consensus*100, final)
	if len(majority) > 0 {
		summary += "\n" + strings.Join(majority, "\n")
	}

	return ConsensusDecision{
		FinalAction:        final,
		ConsensusLevel:     consensus,
		AgentVotes:         votes,
		ReasoningSummary:   summary,
		DissentingOpinions: dissenting,
	}
}

// #endregion
