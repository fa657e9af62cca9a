package agents

// RoleConfig holds sampling settings for one agent role.
type RoleConfig struct {
	// Model overrides the provider's default model when non-empty.
	Model       string
	MaxTokens   int
	Temperature float64
}

// Config holds per-role generation settings. Summaries run cool and
// deterministic; questions and fallback replies get a little more room.
type Config struct {
	RoleSummary  RoleConfig
	SkillSummary RoleConfig
	Question     RoleConfig
	Fallback     RoleConfig
}

// DefaultConfig returns sensible defaults for all four roles.
func DefaultConfig() Config {
	return Config{
		RoleSummary:  RoleConfig{MaxTokens: 128, Temperature: 0.2},
		SkillSummary: RoleConfig{MaxTokens: 128, Temperature: 0.3},
		Question:     RoleConfig{MaxTokens: 256, Temperature: 0.35},
		Fallback:     RoleConfig{MaxTokens: 192, Temperature: 0.4},
	}
}
