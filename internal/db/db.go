// Package db provides PostgreSQL storage for audit run history.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/design-auditor/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun records the start of an audit run and returns its ID
func (db *DB) CreateRun(ctx context.Context, baseURL, viewport string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO audit_runs (base_url, viewport, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		baseURL, viewport,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks an audit run as finished with its summary numbers
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, summary types.Summary) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE audit_runs
		 SET status = $1, avg_compliance = $2, total_issues = $3, critical_issues = $4, completed_at = NOW()
		 WHERE id = $5`,
		status, summary.AvgCompliance, summary.TotalIssues, summary.CriticalIssues, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// SavePageResult stores one page's audit result for a run
func (db *DB) SavePageResult(ctx context.Context, runID uuid.UUID, result types.AuditResult) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal page result: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO audit_pages (run_id, page_name, url, probed, overall_score, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (run_id, page_name) DO UPDATE
		 SET url = $3, probed = $4, overall_score = $5, result = $6, created_at = NOW()`,
		runID, result.PageName, result.URL, result.Probed, result.OverallScore, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save page result %s: %w", result.PageName, err)
	}
	return nil
}

// SaveReport stores the full report artifact for a run
func (db *DB) SaveReport(ctx context.Context, runID uuid.UUID, report *types.AuditReport) error {
	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO audit_reports (run_id, content)
		 VALUES ($1, $2)
		 ON CONFLICT (run_id) DO UPDATE SET content = $2, created_at = NOW()`,
		runID, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport retrieves a stored report by run ID, or nil when absent
func (db *DB) GetReport(ctx context.Context, runID uuid.UUID) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM audit_reports WHERE run_id = $1`,
		runID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return content, nil
}
