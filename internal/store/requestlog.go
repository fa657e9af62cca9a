package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RequestRecord is one logged LLM call.
type RequestRecord struct {
	ID           int
	CreatedAt    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// RequestLog is the write side of the request log. The LLM middleware
// depends on this narrow interface rather than the full repository.
type RequestLog interface {
	AppendRequest(ctx context.Context, rec RequestRecord) error
}

// RequestRepo reads and writes the llm_requests table.
type RequestRepo struct {
	db *sql.DB
}

var _ RequestLog = (*RequestRepo)(nil)

func (r *RequestRepo) AppendRequest(ctx context.Context, rec RequestRecord) error {
	success := 0
	if rec.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests (
			provider, model, purpose, input_tokens, output_tokens,
			latency_ms, success, error_message, request_body, response_body
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.InputTokens,
		rec.OutputTokens, rec.LatencyMs, success, rec.ErrorMessage,
		rec.RequestBody, rec.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert request record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first, up to limit.
// A limit of 0 means no limit.
func (r *RequestRepo) List(ctx context.Context, limit int) ([]RequestRecord, error) {
	q := `SELECT id, created_at, provider, model, purpose, input_tokens,
		output_tokens, latency_ms, success, error_message,
		request_body, response_body
	FROM llm_requests ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query request log: %w", err)
	}
	defer rows.Close()

	var out []RequestRecord
	for rows.Next() {
		rec, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Get returns a single record by id.
func (r *RequestRepo) Get(ctx context.Context, id int) (*RequestRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message,
			request_body, response_body
		FROM llm_requests WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("query request record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("request record %d not found", id)
	}
	rec, err := scanRequest(rows)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UsageRow aggregates token usage for one group (model or purpose).
type UsageRow struct {
	Key          string
	Requests     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// UsageByModel returns per-model request counts and token totals.
func (r *RequestRepo) UsageByModel(ctx context.Context) ([]UsageRow, error) {
	return r.usageBy(ctx, "model")
}

// UsageByPurpose returns per-purpose request counts and token totals.
func (r *RequestRepo) UsageByPurpose(ctx context.Context) ([]UsageRow, error) {
	return r.usageBy(ctx, "purpose")
}

func (r *RequestRepo) usageBy(ctx context.Context, column string) ([]UsageRow, error) {
	// column is one of two fixed identifiers, never user input.
	q := fmt.Sprintf(
		`SELECT %s, COUNT(*), COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0),
			CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER)
		FROM llm_requests GROUP BY %s ORDER BY COUNT(*) DESC`,
		column, column)

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query usage by %s: %w", column, err)
	}
	defer rows.Close()

	var out []UsageRow
	for rows.Next() {
		var u UsageRow
		if err := rows.Scan(&u.Key, &u.Requests, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage row: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanRequest(rows *sql.Rows) (RequestRecord, error) {
	var rec RequestRecord
	var success int
	if err := rows.Scan(
		&rec.ID, &rec.CreatedAt, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody,
	); err != nil {
		return rec, fmt.Errorf("scan request record: %w", err)
	}
	rec.Success = success == 1
	return rec, nil
}
