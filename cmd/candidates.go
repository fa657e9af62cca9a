package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"skillscout/internal/store"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "List stored candidate profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		candidates, err := s.Candidates().All(context.Background())
		if err != nil {
			return fmt.Errorf("read candidates: %w", err)
		}

		if len(candidates) == 0 {
			fmt.Println("No candidate profiles stored yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-24s  %-5s  %-10s  %s\n",
			"ID", "Stored", "Name", "Yrs", "Seniority", "Desired roles")
		fmt.Println(strings.Repeat("─", 96))

		for _, c := range candidates {
			fmt.Printf("%-5d  %-19s  %-24s  %-5d  %-10s  %s\n",
				c.ID,
				c.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(c.FullName, 24),
				c.YearsExperience,
				c.Seniority,
				truncate(c.DesiredPositions, 30),
			)

			if verbose {
				fmt.Printf("       Email: %s   Phone: %s   Location: %s\n",
					c.Email, c.Phone, c.CurrentLocation)
				if c.RoleSummary != "" {
					fmt.Printf("       Role summary:  %s\n", c.RoleSummary)
				}
				if c.SkillSummary != "" {
					fmt.Printf("       Skill summary: %s\n", c.SkillSummary)
				}
				for _, cat := range sortedCategories(c.Categories) {
					fmt.Printf("       %s: %s\n", cat, strings.Join(c.Categories[cat], ", "))
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	candidatesCmd.Flags().BoolP("verbose", "v", false, "Show summaries and skill categories")
}

func sortedCategories(m map[string][]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
