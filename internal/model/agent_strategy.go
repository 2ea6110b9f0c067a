package model

// Agent strategy constants
const (
	AgentStrategyGreedy = "greedy"
	AgentStrategyRandom = "random"
)

// AgentStrategyDisplayName returns a human-readable label for a strategy
func AgentStrategyDisplayName(strategy string) string {
	switch strategy {
	case AgentStrategyGreedy:
		return "Greedy"
	case AgentStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidAgentStrategies returns all valid agent strategy names
func ValidAgentStrategies() []string {
	return []string{AgentStrategyGreedy, AgentStrategyRandom}
}
