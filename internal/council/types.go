package council

// #region agent-role

// AgentRole identifies one of the four fixed council seats.
type AgentRole string

const (
	RoleSleepSpecialist  AgentRole = "sleep"
	RolePerformanceCoach AgentRole = "performance"
	RoleWellnessGuardian AgentRole = "wellness"
	RoleFutureSelf       AgentRole = "future"
)

// #endregion

// #region action

// Action is a council verdict on a single proposed activity.
type Action string

const (
	ActionProceed Action = "PROCEED"
	ActionModify  Action = "MODIFY"
	ActionSkip    Action = "SKIP"
)

// #endregion

// #region recommendation

// Recommendation is a single agent's vote.
type Recommendation struct {
	Role       AgentRole `json:"agent_role"`
	Action     Action    `json:"action"`
	Reasoning  string    `json:"reasoning"`
	Confidence float64   `json:"confidence"` // 0-1

	// PriorityHints are soft per-domain weight multipliers, advisory only.
	PriorityHints map[string]float64 `json:"priority_adjustment,omitempty"`
}

// #endregion

// #region consensus

// ConsensusDecision is the weighted-majority outcome of a deliberation.
type ConsensusDecision struct {
	FinalAction        Action           `json:"final_action"`
	ConsensusLevel     float64          `json:"consensus_level"` // 0-1
	AgentVotes         []Recommendation `json:"agent_votes"`
	ReasoningSummary   string           `json:"reasoning_summary"`
	DissentingOpinions []string         `json:"dissenting_opinions"`
}

// #endregion
