package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"skillscout/internal/agents"
	"skillscout/internal/app"
	"skillscout/internal/interview"
	"skillscout/internal/llm"
	"skillscout/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillscout",
	Short: "AI technical screening assistant",
	Long: "SkillScout — terminal screening assistant that collects a candidate " +
		"profile, classifies their tech stack, and runs a short AI-driven " +
		"technical interview.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInterview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLSCOUT_DB env var)")

	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// runInterview opens the store, builds the provider chain and engine,
// and launches the TUI. A missing LLM credential fails here, before any
// session starts.
func runInterview(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.Requests())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w", err)
	}

	service := agents.NewService(provider, agents.DefaultConfig())
	engine := interview.NewEngine(service, st.Candidates())

	return app.Run(engine)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SKILLSCOUT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
