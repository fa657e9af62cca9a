package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Candidate is one persisted screening profile. Records are append-only:
// the live session never reads them back.
type Candidate struct {
	ID               int
	CreatedAt        time.Time
	SessionID        string
	FullName         string
	Email            string
	Phone            string
	YearsExperience  int
	DesiredPositions string
	CurrentLocation  string
	TechStack        string
	RoleSummary      string
	SkillSummary     string
	Seniority        string

	// Categories maps category name → skills, as classified at consent
	// time. Stored as JSON and schema-validated on load.
	Categories map[string][]string
}

// CandidateRepo provides append and read-all access to stored profiles.
type CandidateRepo interface {
	// Append stores a new candidate record.
	Append(ctx context.Context, c Candidate) error

	// All returns every stored record, oldest first. Rows whose
	// categories JSON fails schema validation are skipped.
	All(ctx context.Context) ([]Candidate, error)
}

type candidateRepo struct {
	db *sql.DB
}

func (r *candidateRepo) Append(ctx context.Context, c Candidate) error {
	categories, err := json.Marshal(c.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO candidates (
			session_id, full_name, email, phone, years_experience,
			desired_positions, current_location, tech_stack,
			role_summary, skill_summary, seniority, categories
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.SessionID, c.FullName, c.Email, c.Phone, c.YearsExperience,
		c.DesiredPositions, c.CurrentLocation, c.TechStack,
		c.RoleSummary, c.SkillSummary, c.Seniority, string(categories),
	)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

func (r *candidateRepo) All(ctx context.Context) ([]Candidate, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, session_id, full_name, email, phone,
			years_experience, desired_positions, current_location,
			tech_stack, role_summary, skill_summary, seniority, categories
		FROM candidates ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		var categories string
		if err := rows.Scan(
			&c.ID, &c.CreatedAt, &c.SessionID, &c.FullName, &c.Email,
			&c.Phone, &c.YearsExperience, &c.DesiredPositions,
			&c.CurrentLocation, &c.TechStack, &c.RoleSummary,
			&c.SkillSummary, &c.Seniority, &categories,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}

		if err := validateCategories(categories); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping candidate %d: %v\n", c.ID, err)
			continue
		}
		if err := json.Unmarshal([]byte(categories), &c.Categories); err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping candidate %d: %v\n", c.ID, err)
			continue
		}

		out = append(out, c)
	}
	return out, rows.Err()
}
